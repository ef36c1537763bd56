// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package gate implements the authentication gate: the cross-cutting policy
deciding whether a write action (save, like, comment post/delete, profile
edit) runs now or is deferred behind a login prompt.

State machine:

	Unauthenticated --write attempt--> ActionPending (prompt surfaced)
	ActionPending   --login success--> Authenticated (the one deferred action replays)
	ActionPending   --login cancel---> Unauthenticated (deferred action discarded)
	Authenticated   --logout---------> Unauthenticated (pending cleared)

At most one deferred action is remembered: a second write attempt while a
prompt is open overwrites the pending action, it does not queue.
*/
package gate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// State is the gate's position in the authentication lifecycle.
type State int

const (
	// Unauthenticated: writes are deferred behind a login prompt.
	Unauthenticated State = iota
	// ActionPending: a login prompt is open with one deferred action held.
	ActionPending
	// Authenticated: writes proceed directly.
	Authenticated
)

// String returns the snake_case label used in log attributes.
func (s State) String() string {
	switch s {
	case ActionPending:
		return "action_pending"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Action is one deferred write, captured as a closure over its inputs.
type Action func(ctx context.Context) error

// Gate mediates write actions against the authentication lifecycle.
//
// All methods are safe for concurrent use, though in practice the gate runs
// on the single UI event flow.
type Gate struct {
	mu        sync.Mutex
	state     State
	pending   Action
	pendingID string
	logger    *slog.Logger
}

// New constructs a gate. authenticated seeds the initial state from the
// session store's restored identity.
func New(authenticated bool, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	state := Unauthenticated
	if authenticated {
		state = Authenticated
	}
	return &Gate{state: state, logger: logger}
}

// State returns the current gate state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

/*
Submit runs action immediately when authenticated, or defers it and signals
that a login prompt must be surfaced.

Returns:
  - ran: true when the action executed now; false when it was deferred.
  - err: the action's error when it ran, nil when deferred.
*/
func (g *Gate) Submit(ctx context.Context, action Action) (ran bool, err error) {
	g.mu.Lock()
	if g.state == Authenticated {
		g.mu.Unlock()
		return true, action(ctx)
	}

	// Overwrite, not queue: only the triggering action is remembered.
	g.pending = action
	g.pendingID = uuid.NewString()
	g.state = ActionPending
	actionID := g.pendingID
	g.mu.Unlock()

	g.logger.Info("gate_action_deferred", slog.String("action_id", actionID))
	return false, nil
}

/*
CompleteLogin transitions the gate to Authenticated after a successful login
and replays exactly the one deferred action, if any.

Returns:
  - error: the replayed action's error, or nil when nothing was pending.
*/
func (g *Gate) CompleteLogin(ctx context.Context) error {
	g.mu.Lock()
	action := g.pending
	actionID := g.pendingID
	g.pending = nil
	g.pendingID = ""
	g.state = Authenticated
	g.mu.Unlock()

	if action == nil {
		return nil
	}

	g.logger.Info("gate_action_replayed", slog.String("action_id", actionID))
	return action(ctx)
}

// CancelLogin returns to Unauthenticated after a cancelled or failed login.
// The deferred action is discarded, not retried.
func (g *Gate) CancelLogin() {
	g.mu.Lock()
	actionID := g.pendingID
	g.pending = nil
	g.pendingID = ""
	g.state = Unauthenticated
	g.mu.Unlock()

	if actionID != "" {
		g.logger.Info("gate_action_discarded", slog.String("action_id", actionID))
	}
}

// Logout returns to Unauthenticated and clears any pending action.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.pending = nil
	g.pendingID = ""
	g.state = Unauthenticated
	g.mu.Unlock()
}
