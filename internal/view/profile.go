// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view

import (
	"context"
	"log/slog"

	"github.com/prashant-2204/glassstream/internal/account"
	"github.com/prashant-2204/glassstream/internal/gate"
	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/internal/session"
	"github.com/prashant-2204/glassstream/pkg/pointer"
)

// ProfileView is the profile screen with its edit form.
type ProfileView struct {
	accounts *account.Client
	session  *session.Store
	gate     *gate.Gate
	logger   *slog.Logger
}

// NewProfileView constructs the profile view.
func NewProfileView(
	accountClient *account.Client,
	sessionStore *session.Store,
	authGate *gate.Gate,
	logger *slog.Logger,
) *ProfileView {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileView{
		accounts: accountClient,
		session:  sessionStore,
		gate:     authGate,
		logger:   logger,
	}
}

// Identity returns the profile being shown, nil when unauthenticated.
func (v *ProfileView) Identity(ctx context.Context) *account.Identity {
	return v.session.Current(ctx)
}

/*
Save applies the edit form as a partial profile update.

Description: Profile editing is a gated write. On confirmed success the
session's cached identity is replaced wholesale with the server's returned
record, never merged field-by-field, because the server is authoritative
for derived fields. On any failure local state is untouched.

Parameters:
  - ctx: context.Context
  - displayName: New display name ("" leaves it unchanged).
  - avatarURL: New avatar reference ("" leaves it unchanged).

Returns:
  - deferred: true when a login prompt must be surfaced instead.
  - err: validation or the update's failure when it ran.
*/
func (v *ProfileView) Save(ctx context.Context, displayName, avatarURL string) (deferred bool, err error) {
	update := account.ProfileUpdate{}
	if displayName != "" {
		update.Username = pointer.To(displayName)
	}
	if avatarURL != "" {
		update.Avatar = pointer.To(avatarURL)
	}

	ran, err := v.gate.Submit(ctx, func(ctx context.Context) error {
		identity := v.session.Current(ctx)
		if identity == nil {
			return apperr.ValidationError("Not logged in")
		}

		updated, uerr := v.accounts.UpdateProfile(ctx, identity.ID, update)
		if uerr != nil {
			return uerr
		}

		v.session.ReplaceIdentity(ctx, updated)
		v.logger.Info("profile_updated", slog.String("identity_id", updated.ID))
		return nil
	})
	return !ran, err
}
