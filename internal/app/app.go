// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package app is the composition root of the GlassStream client.

It wires configuration into the catalog and account clients, the session
store and its persisted storage backend, and the authentication gate, then
exposes one constructor per route (home, browse, search, detail, saved,
profile). Construction happens once at application start; Close tears the
wiring down. No module-level mutable state exists anywhere in the client.
*/
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/prashant-2204/glassstream/internal/account"
	"github.com/prashant-2204/glassstream/internal/catalog"
	"github.com/prashant-2204/glassstream/internal/gate"
	"github.com/prashant-2204/glassstream/internal/platform/config"
	"github.com/prashant-2204/glassstream/internal/platform/redisstore"
	"github.com/prashant-2204/glassstream/internal/session"
	"github.com/prashant-2204/glassstream/internal/view"
)

// App owns every long-lived component of the client.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	Catalog  *catalog.Client
	Accounts *account.Client
	Images   *catalog.ImageResolver
	Session  *session.Store
	Gate     *gate.Gate

	// redis is set only when this App opened the connection itself.
	redis *redis.Client
}

// Option customizes App construction.
type Option func(*options)

type options struct {
	storage session.Storage
}

// WithStorage overrides the persisted session storage backend, e.g. with a
// [session.BadgerStorage] on an embedded database the host already runs.
func WithStorage(storage session.Storage) Option {
	return func(o *options) { o.storage = storage }
}

/*
New wires the full client from configuration.

Description: The persisted storage backend defaults to a state file; a
configured Redis URL selects the Redis backend instead, and [WithStorage]
overrides both. The gate's initial state is seeded from whatever identity the
storage restores.

Returns:
  - *App: The wired client.
  - error: Configuration or storage-backend connection failure.
*/
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	resolved := &options{}
	for _, opt := range opts {
		opt(resolved)
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	storage := resolved.storage
	if storage == nil {
		if cfg.RedisURL != "" {
			client, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
			if err != nil {
				return nil, fmt.Errorf("app_storage_init_failed: %w", err)
			}
			app.redis = client
			storage = session.NewRedisStorage(client)
		} else {
			storage = session.NewFileStorage(cfg.StateFile)
		}
	}

	app.Catalog = catalog.New(cfg.CatalogBaseURL, cfg.CatalogToken, cfg.HTTPTimeout, cfg.CatalogRateLimit, logger)
	app.Images = catalog.NewImageResolver(cfg.ImageBaseURL)
	app.Accounts = account.New(cfg.AccountBaseURL, cfg.HTTPTimeout, logger)
	app.Session = session.NewStore(storage, app.Accounts, logger)
	app.Gate = gate.New(app.Session.IsAuthenticated(ctx), logger)

	logger.Info("app_initialized",
		slog.Bool("authenticated", app.Gate.State() == gate.Authenticated),
	)

	return app, nil
}

// Close releases resources the App opened itself.
func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("app_close_failed: %w", err)
		}
	}
	return nil
}

// # Authentication Flow

/*
Login resolves the display name through the session store (pre-flight probe
included) and, on success, advances the gate and replays the one deferred
action that surfaced the prompt, if any.

Returns:
  - *account.Identity: The now-current identity.
  - error: The login's failure. The gate then returns to Unauthenticated and
    the deferred action is discarded. Replay failures are logged only: the
    login itself stands.
*/
func (a *App) Login(ctx context.Context, displayName string) (*account.Identity, error) {
	identity, err := a.Session.Login(ctx, displayName)
	if err != nil {
		a.Gate.CancelLogin()
		return nil, err
	}

	if replayErr := a.Gate.CompleteLogin(ctx); replayErr != nil {
		a.logger.Warn("deferred_action_failed", slog.String("error", replayErr.Error()))
	}
	return identity, nil
}

// CancelLogin dismisses an open login prompt, discarding any deferred action.
func (a *App) CancelLogin() {
	a.Gate.CancelLogin()
}

// Logout clears the session and resets the gate. Never fails.
func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
	a.Gate.Logout()
}

// # Route Table

// Home constructs the home feed view.
func (a *App) Home() *view.HomeView {
	return view.NewHomeView(a.Catalog, a.logger)
}

// Browse constructs the browse/filter grid for a category.
func (a *App) Browse(category view.Category) *view.BrowseView {
	return view.NewBrowseView(a.Catalog, category, a.logger)
}

// Search constructs the search results view.
func (a *App) Search() *view.SearchView {
	return view.NewSearchView(a.Catalog, a.logger)
}

// Detail constructs the detail page for one movie.
func (a *App) Detail(movieID int) *view.DetailView {
	return view.NewDetailView(a.Catalog, a.Accounts, a.Session, a.Gate, movieID, a.logger)
}

// Saved constructs the saved-movies view.
func (a *App) Saved() *view.SavedView {
	return view.NewSavedView(a.Catalog, a.Accounts, a.Session, a.logger)
}

// Profile constructs the profile view.
func (a *App) Profile() *view.ProfileView {
	return view.NewProfileView(a.Accounts, a.Session, a.Gate, a.logger)
}
