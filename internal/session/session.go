// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package session holds the process-wide current identity and the gate for any
write operation that requires one.

Architecture:

  - Single source of truth: the [Store] is the only component permitted to
    mutate the persisted identity record. Everything else reads through it.
  - Read-through cache: the in-memory identity is populated lazily from
    [Storage] when empty. A corrupt persisted record is treated as "no
    identity": logged, never surfaced.
  - Server-authoritative: the saved/liked sets are replaced wholesale from
    server toggle results, never computed locally ahead of confirmation.

The store is an explicit object constructed once at application start and torn
down on logout; no module-level session state exists anywhere.
*/
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/prashant-2204/glassstream/internal/account"
	"github.com/prashant-2204/glassstream/pkg/slice"
)

// accountClient is the slice of the account client the store depends on.
type accountClient interface {
	Ping(ctx context.Context) error
	LookupOrCreate(ctx context.Context, displayName string) (*account.Identity, error)
}

// Store holds at most one authenticated identity.
//
// # Concurrency
//
// All methods are safe for concurrent use. The persisted record has exactly
// one writer per process; cross-process writes are last-write-wins.
type Store struct {
	mu      sync.RWMutex
	current *account.Identity

	storage Storage
	client  accountClient
	logger  *slog.Logger
}

// NewStore constructs a session store over the given persisted storage.
func NewStore(storage Storage, client accountClient, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		storage: storage,
		client:  client,
		logger:  logger,
	}
}

// # Reads

// IsAuthenticated reports whether an identity is held in memory or
// recoverable from persisted storage. It never fails: a corrupt persisted
// record counts as "no identity" and is only logged.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Current(ctx) != nil
}

// Current returns the cached identity, attempting a single best-effort
// storage read when memory is empty. Returns nil when unauthenticated.
func (s *Store) Current(ctx context.Context) *account.Identity {
	s.mu.RLock()
	if s.current != nil {
		copied := *s.current
		s.mu.RUnlock()
		return &copied
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock: another caller may have populated it.
	if s.current == nil {
		s.current = s.restore(ctx)
	}
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// IsSaved reports membership of movieID in the current identity's saved set.
// False, not an error, when unauthenticated.
func (s *Store) IsSaved(ctx context.Context, movieID int) bool {
	identity := s.Current(ctx)
	return identity != nil && slice.Contains(identity.SavedMovies, movieID)
}

// IsLiked reports membership of movieID in the current identity's liked set.
// False, not an error, when unauthenticated.
func (s *Store) IsLiked(ctx context.Context, movieID int) bool {
	identity := s.Current(ctx)
	return identity != nil && slice.Contains(identity.LikedMovies, movieID)
}

// # Login / Logout

/*
Login resolves displayName through the account client's lookup-or-create and
replaces any prior identity (no merge).

Description: The account service is pre-flight probed first; an unreachable
service fails the login without touching prior state. On any failure the
store is left exactly as it was.

Returns:
  - *account.Identity: The now-current identity.
  - error: Transport, status, decode, or validation failure.
*/
func (s *Store) Login(ctx context.Context, displayName string) (*account.Identity, error) {
	if err := s.client.Ping(ctx); err != nil {
		return nil, err
	}

	identity, err := s.client.LookupOrCreate(ctx, displayName)
	if err != nil {
		return nil, err
	}

	s.replace(ctx, identity)

	s.logger.Info("session_login",
		slog.String("identity_id", identity.ID),
		slog.String("username", identity.Username),
	)

	copied := *identity
	return &copied, nil
}

// Logout clears memory and persisted storage unconditionally. It never
// fails; storage errors are logged and swallowed.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Warn("session_clear_failed", slog.String("error", err.Error()))
	}

	s.logger.Info("session_logout")
}

// # Server-Result Mutations

// ReplaceIdentity swaps the cached identity wholesale for the server's
// returned record and persists it. Used after profile updates, where the
// server is authoritative for derived fields.
func (s *Store) ReplaceIdentity(ctx context.Context, identity *account.Identity) {
	s.replace(ctx, identity)
}

// ReplaceSaved atomically overwrites the cached saved set with a confirmed
// server result and persists the record. No-op when unauthenticated.
func (s *Store) ReplaceSaved(ctx context.Context, movieIDs []int) {
	s.replaceSet(ctx, movieIDs, func(identity *account.Identity, ids []int) {
		identity.SavedMovies = ids
	})
}

// ReplaceLiked atomically overwrites the cached liked set with a confirmed
// server result and persists the record. No-op when unauthenticated.
func (s *Store) ReplaceLiked(ctx context.Context, movieIDs []int) {
	s.replaceSet(ctx, movieIDs, func(identity *account.Identity, ids []int) {
		identity.LikedMovies = ids
	})
}

// # Internals

// restore performs the best-effort persisted-storage read. Corrupt records
// are logged and swallowed.
func (s *Store) restore(ctx context.Context) *account.Identity {
	identity, err := s.storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoRecord) {
			s.logger.Warn("session_restore_failed", slog.String("error", err.Error()))
		}
		return nil
	}
	return identity
}

// replace installs a new identity in memory and persists it. Persistence
// failures are logged: the in-memory identity remains valid for this run.
func (s *Store) replace(ctx context.Context, identity *account.Identity) {
	copied := *identity

	s.mu.Lock()
	s.current = &copied
	s.mu.Unlock()

	if err := s.storage.Save(ctx, &copied); err != nil {
		s.logger.Warn("session_persist_failed", slog.String("error", err.Error()))
	}
}

func (s *Store) replaceSet(ctx context.Context, movieIDs []int, assign func(*account.Identity, []int)) {
	deduped := slice.Dedupe(movieIDs)

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		s.logger.Warn("session_set_replace_unauthenticated")
		return
	}
	assign(s.current, deduped)
	copied := *s.current
	s.mu.Unlock()

	if err := s.storage.Save(ctx, &copied); err != nil {
		s.logger.Warn("session_persist_failed", slog.String("error", err.Error()))
	}
}
