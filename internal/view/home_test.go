// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prashant-2204/glassstream/internal/view"
)

/*
TestHomeView_Load verifies all three rows populate from one load.
*/
func TestHomeView_Load(t *testing.T) {
	fake := newCatalogFake(t)
	v := view.NewHomeView(fake.client(), nil)

	v.Load(context.Background()).Wait()

	assert.Len(t, v.Trending, 2)
	assert.Len(t, v.Popular, 2)
	assert.Len(t, v.TopRated, 2)
	assert.False(t, v.Loading)
}

/*
TestHomeView_RowDegrades verifies one failed row renders empty while the
others still populate.
*/
func TestHomeView_RowDegrades(t *testing.T) {
	fake := newCatalogFake(t)
	fake.setFailing("trending", true)
	v := view.NewHomeView(fake.client(), nil)

	v.Load(context.Background()).Wait()

	assert.Empty(t, v.Trending)
	assert.Len(t, v.Popular, 2)
	assert.Len(t, v.TopRated, 2)
	assert.False(t, v.Loading)
}

/*
TestHomeView_UnmountDiscardsLateLoad verifies a load finishing after unmount
leaves the view untouched.
*/
func TestHomeView_UnmountDiscardsLateLoad(t *testing.T) {
	fake := newCatalogFake(t)
	v := view.NewHomeView(fake.client(), nil)

	release := fake.hold()
	handle := v.Load(context.Background())
	v.Unmount()
	release()
	handle.Wait()

	assert.Empty(t, v.Trending)
	assert.Empty(t, v.Popular)
	assert.Empty(t, v.TopRated)
}
