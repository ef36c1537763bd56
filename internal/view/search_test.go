// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashant-2204/glassstream/internal/view"
)

/*
TestSearchView_Load verifies a fresh search replaces prior results and a blank
query clears the view without touching the network.
*/
func TestSearchView_Load(t *testing.T) {
	fake := newCatalogFake(t)
	v := view.NewSearchView(fake.client(), nil)
	ctx := context.Background()

	// 1. A search populates results.
	v.Load(ctx, "matrix").Wait()
	require.Len(t, v.Results, 2)
	assert.Equal(t, "matrix", v.Query)

	// 2. A blank (whitespace) query clears everything, issues nothing.
	assert.Nil(t, v.Load(ctx, "   "))
	assert.Empty(t, v.Results)
	assert.Empty(t, v.Query)
	assert.False(t, v.Loading())
	assert.Equal(t, 1, fake.callCount("search"))
}

/*
TestSearchView_LoadMore verifies pagination and the end-of-results stop.
*/
func TestSearchView_LoadMore(t *testing.T) {
	fake := newCatalogFake(t)
	fake.totalPages = 2
	v := view.NewSearchView(fake.client(), nil)
	ctx := context.Background()

	v.Load(ctx, "matrix").Wait()
	v.LoadMore(ctx).Wait()

	require.Len(t, v.Results, 4)
	assert.Equal(t, 201, v.Results[2].ID)

	// Exhausted: no handle, no request.
	assert.Nil(t, v.LoadMore(ctx))
	assert.Equal(t, 2, fake.callCount("search"))
}

/*
TestSearchView_StaleResponseDiscarded verifies a response arriving after the
view was unmounted never mutates its state.
*/
func TestSearchView_StaleResponseDiscarded(t *testing.T) {
	fake := newCatalogFake(t)
	v := view.NewSearchView(fake.client(), nil)
	ctx := context.Background()

	// 1. Hold the response open, then navigate away.
	release := fake.hold()
	handle := v.Load(ctx, "matrix")
	v.Unmount()

	// 2. The late response settles without applying.
	release()
	handle.Wait()

	assert.Empty(t, v.Results)
}

/*
TestSearchView_ReloadSupersedes verifies a newer search wins over a slower
older one regardless of arrival order.
*/
func TestSearchView_ReloadSupersedes(t *testing.T) {
	fake := newCatalogFake(t)
	v := view.NewSearchView(fake.client(), nil)
	ctx := context.Background()

	// 1. Start a search that will finish late.
	release := fake.hold()
	stale := v.Load(ctx, "slow query")

	// 2. A new search supersedes it. Cancel the old transport work, then let
	//    whatever is left settle.
	stale.Cancel()
	release()
	stale.Wait()

	v.Load(ctx, "matrix").Wait()

	assert.Equal(t, "matrix", v.Query)
	require.Len(t, v.Results, 2)
	assert.Equal(t, 101, v.Results[0].ID)
}
