// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package app_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashant-2204/glassstream/internal/account"
	"github.com/prashant-2204/glassstream/internal/account/accounttest"
	"github.com/prashant-2204/glassstream/internal/app"
	"github.com/prashant-2204/glassstream/internal/gate"
	"github.com/prashant-2204/glassstream/internal/platform/config"
	"github.com/prashant-2204/glassstream/internal/session"
)

func newTestConfig(t *testing.T, accountURL string) *config.Config {
	t.Helper()
	return &config.Config{
		CatalogBaseURL:   "http://127.0.0.1:1", // views under test never touch the catalog
		CatalogToken:     "test-token",
		ImageBaseURL:     "https://image.example.org/t/p",
		AccountBaseURL:   accountURL,
		StateFile:        filepath.Join(t.TempDir(), "state.json"),
		HTTPTimeout:      time.Second,
		CatalogRateLimit: 0,
	}
}

func newApp(t *testing.T) (*app.App, *accounttest.Server) {
	t.Helper()

	accountFake := accounttest.New()
	t.Cleanup(accountFake.Close)

	a, err := app.New(context.Background(), newTestConfig(t, accountFake.URL), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a, accountFake
}

/*
TestApp_New verifies the wiring: every component is constructed and a fresh
state file leaves the gate unauthenticated.
*/
func TestApp_New(t *testing.T) {
	a, _ := newApp(t)

	assert.NotNil(t, a.Catalog)
	assert.NotNil(t, a.Accounts)
	assert.NotNil(t, a.Images)
	assert.NotNil(t, a.Session)
	assert.NotNil(t, a.Gate)
	assert.Equal(t, gate.Unauthenticated, a.Gate.State())
}

/*
TestApp_LoginFlow verifies login advances the gate, logout resets it, and the
session survives across App instances through the state file.
*/
func TestApp_LoginFlow(t *testing.T) {
	accountFake := accounttest.New()
	t.Cleanup(accountFake.Close)
	cfg := newTestConfig(t, accountFake.URL)
	ctx := context.Background()

	first, err := app.New(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })

	// 1. Login authenticates session and gate together.
	identity, err := first.Login(ctx, "moviefan42")
	require.NoError(t, err)
	assert.Equal(t, "moviefan42", identity.Username)
	assert.Equal(t, gate.Authenticated, first.Gate.State())

	// 2. A second App over the same state file restores the identity and
	//    seeds its gate authenticated.
	second, err := app.New(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	assert.Equal(t, gate.Authenticated, second.Gate.State())
	assert.Equal(t, identity.ID, second.Session.Current(ctx).ID)

	// 3. Logout clears both.
	first.Logout(ctx)
	assert.Equal(t, gate.Unauthenticated, first.Gate.State())
	assert.False(t, first.Session.IsAuthenticated(ctx))
}

/*
TestApp_Login_Failure verifies a failed login cancels the prompt and discards
the deferred action.
*/
func TestApp_Login_Failure(t *testing.T) {
	a, accountFake := newApp(t)
	ctx := context.Background()

	// Surface a prompt by deferring a write.
	detail := a.Detail(603)
	deferred, err := detail.ToggleSaved(ctx)
	require.NoError(t, err)
	require.True(t, deferred)

	// An unreachable account service fails the login.
	accountFake.Close()
	_, err = a.Login(ctx, "nobody")

	require.Error(t, err)
	assert.Equal(t, gate.Unauthenticated, a.Gate.State())
	assert.False(t, a.Session.IsAuthenticated(ctx))
}

/*
TestApp_Login_ReplaysDeferred verifies the end-to-end prompt flow: a deferred
toggle runs exactly once after the login completes.
*/
func TestApp_Login_ReplaysDeferred(t *testing.T) {
	a, accountFake := newApp(t)
	ctx := context.Background()

	detail := a.Detail(603)
	deferred, err := detail.ToggleSaved(ctx)
	require.NoError(t, err)
	require.True(t, deferred)

	_, err = a.Login(ctx, "moviefan42")
	require.NoError(t, err)

	assert.Equal(t, 1, accountFake.Calls("toggle_saved"))
	assert.True(t, a.Session.IsSaved(ctx, 603))
}

/*
TestApp_CancelLogin verifies dismissing the prompt discards the deferred
action without authenticating.
*/
func TestApp_CancelLogin(t *testing.T) {
	a, accountFake := newApp(t)
	ctx := context.Background()

	detail := a.Detail(603)
	_, err := detail.ToggleSaved(ctx)
	require.NoError(t, err)
	require.Equal(t, gate.ActionPending, a.Gate.State())

	a.CancelLogin()

	assert.Equal(t, gate.Unauthenticated, a.Gate.State())
	assert.Zero(t, accountFake.Calls("toggle_saved"))
}

/*
TestApp_WithStorage verifies the storage override takes precedence over the
configured backends.
*/
func TestApp_WithStorage(t *testing.T) {
	accountFake := accounttest.New()
	t.Cleanup(accountFake.Close)
	ctx := context.Background()

	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Save(ctx, &account.Identity{ID: "u1", Username: "preseeded"}))

	a, err := app.New(ctx, newTestConfig(t, accountFake.URL), nil, app.WithStorage(storage))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, gate.Authenticated, a.Gate.State())
	assert.Equal(t, "preseeded", a.Session.Current(ctx).Username)
}

/*
TestApp_RouteTable verifies each route constructor yields a wired view.
*/
func TestApp_RouteTable(t *testing.T) {
	a, _ := newApp(t)

	assert.NotNil(t, a.Home())
	assert.NotNil(t, a.Browse("popular"))
	assert.NotNil(t, a.Search())
	assert.NotNil(t, a.Detail(603))
	assert.NotNil(t, a.Saved())
	assert.NotNil(t, a.Profile())
}
