// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashant-2204/glassstream/internal/account"
	"github.com/prashant-2204/glassstream/internal/session"
)

var testIdentity = &account.Identity{
	ID:          "u1",
	Username:    "moviefan42",
	Avatar:      "https://cdn.example.org/a.png",
	SavedMovies: []int{603, 11},
	LikedMovies: []int{77},
}

// exerciseStorage runs the lifecycle shared by every backend: absent, saved,
// overwritten, cleared.
func exerciseStorage(t *testing.T, storage session.Storage) {
	t.Helper()
	ctx := context.Background()

	// 1. Fresh storage holds nothing.
	_, err := storage.Load(ctx)
	require.ErrorIs(t, err, session.ErrNoRecord)

	// 2. Saved record round-trips intact.
	require.NoError(t, storage.Save(ctx, testIdentity))
	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, loaded)

	// 3. A later save overwrites, never merges.
	require.NoError(t, storage.Save(ctx, &account.Identity{ID: "u2", Username: "other"}))
	loaded, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", loaded.ID)
	assert.Empty(t, loaded.SavedMovies)

	// 4. Clear is effective and repeatable.
	require.NoError(t, storage.Clear(ctx))
	require.NoError(t, storage.Clear(ctx))
	_, err = storage.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoRecord)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, session.NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	exerciseStorage(t, session.NewFileStorage(filepath.Join(t.TempDir(), "state.json")))
}

func TestBadgerStorage(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	exerciseStorage(t, session.NewBadgerStorage(db))
}

/*
TestFileStorage_Corrupt verifies a corrupt file surfaces as a decode error,
distinct from the absent-record sentinel.
*/
func TestFileStorage_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))

	storage := session.NewFileStorage(path)

	_, err := storage.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNoRecord)
}

/*
TestFileStorage_EmptyRecord verifies a file without an identity key behaves
as absent.
*/
func TestFileStorage_EmptyRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	storage := session.NewFileStorage(path)

	_, err := storage.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNoRecord)
}
