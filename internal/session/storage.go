// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/prashant-2204/glassstream/internal/account"
)

// RecordKey is the well-known key the serialized current identity lives
// under. Presence of a well-formed record implies authenticated; absence or a
// parse failure implies unauthenticated.
const RecordKey = "currentUser"

// ErrNoRecord is returned by [Storage.Load] when no persisted record exists.
var ErrNoRecord = errors.New("session: no persisted record")

// Storage persists at most one identity record.
//
// # Contract
//
// Load returns ErrNoRecord when nothing is stored and any other error when a
// record exists but cannot be decoded; the [Store] treats both the same way
// (unauthenticated) but logs only the latter. Save overwrites the record
// atomically. Clear never fails on an already-absent record.
//
// Concurrent writers from multiple processes are not coordinated:
// last-write-wins at the storage layer.
type Storage interface {
	Load(ctx context.Context) (*account.Identity, error)
	Save(ctx context.Context, identity *account.Identity) error
	Clear(ctx context.Context) error
}

// MemoryStorage is a process-local [Storage] for tests and ephemeral runs.
type MemoryStorage struct {
	mu       sync.Mutex
	identity *account.Identity
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the held identity or [ErrNoRecord].
func (s *MemoryStorage) Load(_ context.Context) (*account.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil, ErrNoRecord
	}
	copied := *s.identity
	return &copied, nil
}

// Save overwrites the held identity.
func (s *MemoryStorage) Save(_ context.Context, identity *account.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *identity
	s.identity = &copied
	return nil
}

// Clear drops the held identity.
func (s *MemoryStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	return nil
}
