// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prashant-2204/glassstream/internal/account"
	"github.com/prashant-2204/glassstream/internal/catalog"
	"github.com/prashant-2204/glassstream/internal/gate"
	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/internal/session"
	"github.com/prashant-2204/glassstream/pkg/slice"
)

// DetailView is the movie detail page: the full record, a similar-movies
// row, and the comment thread with its composer.
type DetailView struct {
	viewState

	catalog  *catalog.Client
	accounts *account.Client
	session  *session.Store
	gate     *gate.Gate
	logger   *slog.Logger

	MovieID int

	Details *catalog.MovieDetails
	Similar []catalog.Movie
	// Comments carries the optimistic local projection: confirmed posts are
	// prepended and confirmed deletes removed without a re-fetch. Load
	// reconciles against the authoritative server list on every mount.
	Comments []account.Comment
	Loading  bool
}

// NewDetailView constructs a detail page for one movie.
func NewDetailView(
	catalogClient *catalog.Client,
	accountClient *account.Client,
	sessionStore *session.Store,
	authGate *gate.Gate,
	movieID int,
	logger *slog.Logger,
) *DetailView {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailView{
		catalog:  catalogClient,
		accounts: accountClient,
		session:  sessionStore,
		gate:     authGate,
		MovieID:  movieID,
		logger:   logger,
	}
}

// # Loading

// Load fetches the detail record, the similar row, and the comment thread.
// Each section degrades independently; the comment list re-fetch also
// reconciles any optimistic projection from a previous mount.
func (v *DetailView) Load(ctx context.Context) *LoadHandle {
	generation := v.bump()

	v.mu.Lock()
	v.Loading = true
	v.mu.Unlock()

	return run(ctx, func(ctx context.Context) {
		details, err := v.catalog.Details(ctx, v.MovieID)
		if err != nil {
			v.logger.Warn("detail_degraded",
				slog.Int("movie_id", v.MovieID),
				slog.String("kind", apperr.KindOf(err).String()),
				slog.String("error", err.Error()),
			)
		}

		var similar []catalog.Movie
		if page, serr := v.catalog.Similar(ctx, v.MovieID); serr != nil {
			v.logger.Warn("detail_similar_degraded",
				slog.Int("movie_id", v.MovieID),
				slog.String("kind", apperr.KindOf(serr).String()),
				slog.String("error", serr.Error()),
			)
		} else {
			similar = page.Results
		}

		comments := v.accounts.ListComments(ctx, v.MovieID)

		v.apply(generation, func() {
			v.Details = details
			v.Similar = similar
			v.Comments = comments
			v.Loading = false
		})
	})
}

// # Session-Backed Reads

// Saved reports whether the movie is in the current identity's saved set.
func (v *DetailView) Saved(ctx context.Context) bool {
	return v.session.IsSaved(ctx, v.MovieID)
}

// Liked reports whether the movie is in the current identity's liked set.
func (v *DetailView) Liked(ctx context.Context) bool {
	return v.session.IsLiked(ctx, v.MovieID)
}

// # Gated Writes

/*
ToggleSaved flips this movie's saved-set membership.

Description: When unauthenticated the action is deferred behind the login
prompt (deferred=true) and replayed by the gate after a successful login. The
confirmed server set replaces the cached set atomically; no local flip
happens before confirmation.

Returns:
  - deferred: true when a login prompt must be surfaced instead.
  - err: the toggle's failure when it ran.
*/
func (v *DetailView) ToggleSaved(ctx context.Context) (deferred bool, err error) {
	ran, err := v.gate.Submit(ctx, func(ctx context.Context) error {
		return toggleSaved(ctx, v.accounts, v.session, v.MovieID)
	})
	return !ran, err
}

// ToggleLiked flips this movie's liked-set membership, with the same gating
// and confirmation semantics as ToggleSaved.
func (v *DetailView) ToggleLiked(ctx context.Context) (deferred bool, err error) {
	ran, err := v.gate.Submit(ctx, func(ctx context.Context) error {
		return toggleLiked(ctx, v.accounts, v.session, v.MovieID)
	})
	return !ran, err
}

/*
PostComment submits the composer body as a new comment.

Description: A blank (whitespace-only) body is rejected locally with no
network call and no login prompt. Otherwise the post is gated: deferred
behind login when unauthenticated, executed directly when authenticated. On
confirmed success the new comment is prepended to the in-memory list without
a re-fetch.

Returns:
  - deferred: true when a login prompt must be surfaced instead.
  - err: validation or the post's failure when it ran.
*/
func (v *DetailView) PostComment(ctx context.Context, content string) (deferred bool, err error) {
	// Blank bodies never reach the gate: the composer is disabled, so no
	// notice and no prompt.
	if strings.TrimSpace(content) == "" {
		return false, apperr.ValidationError("Comment body must not be blank")
	}

	ran, err := v.gate.Submit(ctx, func(ctx context.Context) error {
		identity := v.session.Current(ctx)
		if identity == nil {
			return apperr.ValidationError("Not logged in")
		}

		comment, perr := v.accounts.PostComment(ctx, *identity, v.MovieID, content)
		if perr != nil {
			return perr
		}

		// Confirmed: prepend locally, server ordering is reconciled on the
		// next mount.
		v.mu.Lock()
		v.Comments = append([]account.Comment{*comment}, v.Comments...)
		v.mu.Unlock()
		return nil
	})
	return !ran, err
}

/*
DeleteComment removes one of the current user's own comments.

Description: Requires an authenticated identity at the call site; deleting
another author's comment is rejected locally. On confirmed success the
comment is removed from the in-memory list by identifier.
*/
func (v *DetailView) DeleteComment(ctx context.Context, commentID string) error {
	identity := v.session.Current(ctx)
	if identity == nil {
		return apperr.ValidationError("Not logged in")
	}

	v.mu.Lock()
	var target *account.Comment
	for i := range v.Comments {
		if v.Comments[i].ID == commentID {
			target = &v.Comments[i]
			break
		}
	}
	v.mu.Unlock()

	if target == nil {
		return apperr.NotFound("Comment")
	}
	if target.UserID != identity.ID {
		return apperr.ValidationError("Only the author can delete a comment")
	}

	if err := v.accounts.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	v.mu.Lock()
	v.Comments = slice.Filter(v.Comments, func(comment account.Comment) bool {
		return comment.ID != commentID
	})
	v.mu.Unlock()
	return nil
}

// # Shared toggle actions

// toggleSaved runs the single round-trip saved toggle and installs the
// confirmed set. Shared with SavedView.
func toggleSaved(ctx context.Context, accounts *account.Client, sessionStore *session.Store, movieID int) error {
	identity := sessionStore.Current(ctx)
	if identity == nil {
		return apperr.ValidationError("Not logged in")
	}

	updated, err := accounts.ToggleSaved(ctx, identity.ID, movieID)
	if err != nil {
		return err
	}
	sessionStore.ReplaceSaved(ctx, updated)
	return nil
}

func toggleLiked(ctx context.Context, accounts *account.Client, sessionStore *session.Store, movieID int) error {
	identity := sessionStore.Current(ctx)
	if identity == nil {
		return apperr.ValidationError("Not logged in")
	}

	updated, err := accounts.ToggleLiked(ctx, identity.ID, movieID)
	if err != nil {
		return err
	}
	sessionStore.ReplaceLiked(ctx, updated)
	return nil
}
