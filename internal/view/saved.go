// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view

import (
	"context"
	"log/slog"

	"github.com/prashant-2204/glassstream/internal/account"
	"github.com/prashant-2204/glassstream/internal/catalog"
	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/internal/session"
	"github.com/prashant-2204/glassstream/pkg/slice"
)

// SavedView is the saved-movies list: the current identity's saved-id set
// resolved to detail records.
type SavedView struct {
	viewState

	catalog  *catalog.Client
	accounts *account.Client
	session  *session.Store
	logger   *slog.Logger

	Movies  []catalog.MovieDetails
	Loading bool
}

// NewSavedView constructs the saved-movies view.
func NewSavedView(
	catalogClient *catalog.Client,
	accountClient *account.Client,
	sessionStore *session.Store,
	logger *slog.Logger,
) *SavedView {
	if logger == nil {
		logger = slog.Default()
	}
	return &SavedView{
		catalog:  catalogClient,
		accounts: accountClient,
		session:  sessionStore,
		logger:   logger,
	}
}

// Load resolves every id in the saved set to a detail record. Unauthenticated
// sessions render an empty list without any network call; ids whose detail
// fetch fails are skipped with a logged-only error.
func (v *SavedView) Load(ctx context.Context) *LoadHandle {
	generation := v.bump()

	identity := v.session.Current(ctx)
	if identity == nil {
		v.mu.Lock()
		v.Movies = nil
		v.Loading = false
		v.mu.Unlock()
		return nil
	}

	savedIDs := slice.Dedupe(identity.SavedMovies)

	v.mu.Lock()
	v.Loading = true
	v.mu.Unlock()

	return run(ctx, func(ctx context.Context) {
		resolved := make([]catalog.MovieDetails, 0, len(savedIDs))
		for _, movieID := range savedIDs {
			details, err := v.catalog.Details(ctx, movieID)
			if err != nil {
				v.logger.Warn("saved_movie_skipped",
					slog.Int("movie_id", movieID),
					slog.String("kind", apperr.KindOf(err).String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			resolved = append(resolved, *details)
		}

		v.apply(generation, func() {
			v.Movies = resolved
			v.Loading = false
		})
	})
}

// Remove toggles a movie out of the saved set and, on confirmation, drops it
// from the rendered list. Only reachable while authenticated.
func (v *SavedView) Remove(ctx context.Context, movieID int) error {
	if err := toggleSaved(ctx, v.accounts, v.session, movieID); err != nil {
		return err
	}

	v.mu.Lock()
	v.Movies = slice.Filter(v.Movies, func(details catalog.MovieDetails) bool {
		return details.ID != movieID
	})
	v.mu.Unlock()
	return nil
}
