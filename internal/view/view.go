// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package view composes the catalog and account clients into the application's
screens: home feed, browse grid, detail page, search results, saved list, and
profile. It owns all transient UI state (result lists, loading flags,
pagination cursors).

Architecture:

  - Explicit loads: every view exposes a Load entry point called on
    construction/mount, returning a cancellable [LoadHandle] instead of
    relying on implicit lifecycle hooks.
  - Stale-response guard: each view carries a generation counter. A load only
    applies its result if the view's generation still matches the one the
    load started with, so navigating away discards late responses instead of
    mutating an unmounted view's state.
  - Graceful reads: catalog and comment fetch failures degrade to empty
    results with a logged-only error; they never block rendering.
  - Two-phase writes: server confirmation first, then a pure local-list
    transformation (prepend/remove by id). Never applied before confirmation.
*/
package view

import (
	"context"
	"sync"
	"sync/atomic"
)

// LoadHandle tracks one asynchronous load so the caller can cancel it or
// block until it settles.
type LoadHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel aborts the load's outstanding requests. Safe to call repeatedly.
func (h *LoadHandle) Cancel() {
	if h != nil && h.cancel != nil {
		h.cancel()
	}
}

// Wait blocks until the load has settled (applied or discarded).
func (h *LoadHandle) Wait() {
	if h != nil {
		<-h.done
	}
}

// run spawns the load body with its own cancellable context.
func run(ctx context.Context, body func(ctx context.Context)) *LoadHandle {
	ctx, cancel := context.WithCancel(ctx)
	handle := &LoadHandle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(handle.done)
		defer cancel()
		body(ctx)
	}()

	return handle
}

// guard is the per-view generation counter behind the stale-response guard.
type guard struct {
	generation atomic.Uint64
}

// bump invalidates every in-flight load and returns the new generation.
func (g *guard) bump() uint64 {
	return g.generation.Add(1)
}

// is reports whether generation is still current.
func (g *guard) is(generation uint64) bool {
	return g.generation.Load() == generation
}

// viewState couples the guard with the mutex protecting a view's fields.
type viewState struct {
	mu sync.Mutex
	guard
}

// apply runs mutate under the view lock only if generation is still current.
// Late results from an unmounted or reloaded view fall through silently.
func (s *viewState) apply(generation uint64, mutate func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.is(generation) {
		return false
	}
	mutate()
	return true
}

// Unmount invalidates all in-flight loads for the view that embeds this
// state. Called when the user navigates away.
func (s *viewState) Unmount() {
	s.bump()
}
