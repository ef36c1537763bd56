// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view

import (
	"context"
	"log/slog"

	"github.com/prashant-2204/glassstream/internal/catalog"
	"github.com/prashant-2204/glassstream/internal/platform/apperr"
)

// HomeView is the home feed: a trending row plus popular and top-rated rows.
type HomeView struct {
	viewState

	catalog *catalog.Client
	logger  *slog.Logger

	// Rendered rows. Each degrades independently to empty on fetch failure.
	Trending []catalog.Movie
	Popular  []catalog.Movie
	TopRated []catalog.Movie
	Loading  bool
}

// NewHomeView constructs the home feed view.
func NewHomeView(catalogClient *catalog.Client, logger *slog.Logger) *HomeView {
	if logger == nil {
		logger = slog.Default()
	}
	return &HomeView{catalog: catalogClient, logger: logger}
}

// Load fetches all three rows. Each row failure is logged and rendered as an
// empty row; the other rows still populate.
func (v *HomeView) Load(ctx context.Context) *LoadHandle {
	generation := v.bump()

	v.mu.Lock()
	v.Loading = true
	v.mu.Unlock()

	return run(ctx, func(ctx context.Context) {
		trending := v.row(ctx, "trending", func(ctx context.Context) (*catalog.MoviePage, error) {
			return v.catalog.Trending(ctx, catalog.WindowWeek)
		})
		popular := v.row(ctx, "popular", func(ctx context.Context) (*catalog.MoviePage, error) {
			return v.catalog.Popular(ctx, 1)
		})
		topRated := v.row(ctx, "top_rated", func(ctx context.Context) (*catalog.MoviePage, error) {
			return v.catalog.TopRated(ctx, 1)
		})

		v.apply(generation, func() {
			v.Trending = trending
			v.Popular = popular
			v.TopRated = topRated
			v.Loading = false
		})
	})
}

// row fetches one feed row, degrading to empty on failure.
func (v *HomeView) row(ctx context.Context, name string, fetch func(ctx context.Context) (*catalog.MoviePage, error)) []catalog.Movie {
	page, err := fetch(ctx)
	if err != nil {
		v.logger.Warn("home_row_degraded",
			slog.String("row", name),
			slog.String("kind", apperr.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return page.Results
}
