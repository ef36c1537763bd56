// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view

import (
	"context"
	"log/slog"

	"github.com/prashant-2204/glassstream/internal/catalog"
	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/pkg/pagination"
	"github.com/prashant-2204/glassstream/pkg/slice"
)

// Category selects which catalog listing the browse grid shows.
type Category string

const (
	CategoryPopular  Category = "popular"
	CategoryTopRated Category = "top_rated"
	CategoryUpcoming Category = "upcoming"
)

// BrowseView is the browse/filter grid: one paginated category listing with
// an optional client-side genre filter and a "load more" control.
type BrowseView struct {
	viewState

	catalog *catalog.Client
	logger  *slog.Logger

	Category Category
	// GenreID filters the visible grid client-side; zero shows everything.
	GenreID int

	Movies []catalog.Movie
	Pager  pagination.Pager

	// loading doubles as the in-flight guard: while a page request is
	// outstanding, further "load more" triggers are no-ops. Two uncoalesced
	// requests against the same query would both append, so this guard is a
	// correctness requirement, not an optimization.
	loading bool
}

// NewBrowseView constructs a browse grid over the given category.
func NewBrowseView(catalogClient *catalog.Client, category Category, logger *slog.Logger) *BrowseView {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowseView{catalog: catalogClient, Category: category, logger: logger}
}

// Loading reports whether a page request is outstanding.
func (v *BrowseView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Visible returns the grid entries after applying the genre filter.
func (v *BrowseView) Visible() []catalog.Movie {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.GenreID == 0 {
		return v.Movies
	}
	genreID := v.GenreID
	return slice.Filter(v.Movies, func(movie catalog.Movie) bool {
		return slice.Contains(movie.GenreIDs, genreID)
	})
}

// SetGenre changes the client-side genre filter. No fetch is triggered.
func (v *BrowseView) SetGenre(genreID int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.GenreID = genreID
}

// SetCategory switches the listing and clears loaded state. The caller
// follows up with Load.
func (v *BrowseView) SetCategory(category Category) {
	v.bump()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.Category = category
	v.Movies = nil
	v.Pager.Reset()
	v.loading = false
}

// Load fetches the first page, discarding anything already loaded.
func (v *BrowseView) Load(ctx context.Context) *LoadHandle {
	generation := v.bump()

	v.mu.Lock()
	v.Movies = nil
	v.Pager.Reset()
	v.loading = true
	v.mu.Unlock()

	return v.fetch(ctx, generation, pagination.FirstPage, true)
}

/*
LoadMore fetches the next page and appends it to the grid.

Description: No request is issued (and nil is returned) when a page request
is already outstanding or when the current page has reached the lesser of the
reported page count and the hard cap.
*/
func (v *BrowseView) LoadMore(ctx context.Context) *LoadHandle {
	generation := v.generation.Load()

	v.mu.Lock()
	if v.loading || !v.Pager.HasMore() {
		v.mu.Unlock()
		return nil
	}
	next := v.Pager.Next()
	v.loading = true
	v.mu.Unlock()

	return v.fetch(ctx, generation, next, false)
}

// fetch performs one page request and applies it under the stale guard.
func (v *BrowseView) fetch(ctx context.Context, generation uint64, page int, replace bool) *LoadHandle {
	return run(ctx, func(ctx context.Context) {
		result, err := v.listing(ctx, page)
		if err != nil {
			v.logger.Warn("browse_page_degraded",
				slog.String("category", string(v.Category)),
				slog.Int("page", page),
				slog.String("kind", apperr.KindOf(err).String()),
				slog.String("error", err.Error()),
			)
			v.apply(generation, func() { v.loading = false })
			return
		}

		v.apply(generation, func() {
			if replace {
				v.Movies = result.Results
			} else {
				v.Movies = append(v.Movies, result.Results...)
			}
			v.Pager.Record(result.Page, result.TotalPages)
			v.loading = false
		})
	})
}

// listing dispatches to the catalog operation for the current category.
func (v *BrowseView) listing(ctx context.Context, page int) (*catalog.MoviePage, error) {
	switch v.Category {
	case CategoryTopRated:
		return v.catalog.TopRated(ctx, page)
	case CategoryUpcoming:
		return v.catalog.Upcoming(ctx, page)
	default:
		return v.catalog.Popular(ctx, page)
	}
}
