// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prashant-2204/glassstream/internal/catalog"
	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/pkg/pagination"
)

// SearchView is the paginated text-search results screen.
type SearchView struct {
	viewState

	catalog *catalog.Client
	logger  *slog.Logger

	Query   string
	Results []catalog.Movie
	Pager   pagination.Pager

	// In-flight guard, same correctness role as in BrowseView.
	loading bool
}

// NewSearchView constructs a search results view.
func NewSearchView(catalogClient *catalog.Client, logger *slog.Logger) *SearchView {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchView{catalog: catalogClient, logger: logger}
}

// Loading reports whether a page request is outstanding.
func (v *SearchView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Load runs a fresh search for query, discarding prior results. A blank
// query clears the view without a network call.
func (v *SearchView) Load(ctx context.Context, query string) *LoadHandle {
	generation := v.bump()
	query = strings.TrimSpace(query)

	v.mu.Lock()
	v.Query = query
	v.Results = nil
	v.Pager.Reset()
	v.loading = query != ""
	v.mu.Unlock()

	if query == "" {
		return nil
	}
	return v.fetch(ctx, generation, pagination.FirstPage, true)
}

// LoadMore appends the next page. No request is issued (and nil is returned)
// while a request is outstanding or once the page cap is reached.
func (v *SearchView) LoadMore(ctx context.Context) *LoadHandle {
	generation := v.generation.Load()

	v.mu.Lock()
	if v.loading || v.Query == "" || !v.Pager.HasMore() {
		v.mu.Unlock()
		return nil
	}
	next := v.Pager.Next()
	v.loading = true
	v.mu.Unlock()

	return v.fetch(ctx, generation, next, false)
}

func (v *SearchView) fetch(ctx context.Context, generation uint64, page int, replace bool) *LoadHandle {
	query := v.Query

	return run(ctx, func(ctx context.Context) {
		result, err := v.catalog.Search(ctx, query, page)
		if err != nil {
			v.logger.Warn("search_page_degraded",
				slog.String("query", query),
				slog.Int("page", page),
				slog.String("kind", apperr.KindOf(err).String()),
				slog.String("error", err.Error()),
			)
			v.apply(generation, func() { v.loading = false })
			return
		}

		v.apply(generation, func() {
			if replace {
				v.Results = result.Results
			} else {
				v.Results = append(v.Results, result.Results...)
			}
			v.Pager.Record(result.Page, result.TotalPages)
			v.loading = false
		})
	})
}
