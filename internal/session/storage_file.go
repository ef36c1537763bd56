// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/prashant-2204/glassstream/internal/account"
)

// FileStorage is the default [Storage]: one JSON file holding the serialized
// current identity under the [RecordKey] key.
type FileStorage struct {
	path string
}

// NewFileStorage returns a storage rooted at the given file path. The parent
// directory must exist.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// fileRecord wraps the identity under [RecordKey] so the on-disk shape stays
// stable if more keys are ever added.
type fileRecord struct {
	CurrentUser *account.Identity `json:"currentUser"`
}

/*
Load reads and decodes the persisted identity.

Returns:
  - *account.Identity: The stored record.
  - error: ErrNoRecord when the file is absent or holds no identity, a decode
    error when the file exists but is corrupt.
*/
func (s *FileStorage) Load(_ context.Context) (*account.Identity, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("session_file_read_failed: %w", err)
	}

	record := fileRecord{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("session_file_decode_failed: %w", err)
	}
	if record.CurrentUser == nil {
		return nil, ErrNoRecord
	}
	return record.CurrentUser, nil
}

// Save writes the identity with a rename so a crash mid-write never leaves a
// half-written record behind.
func (s *FileStorage) Save(_ context.Context, identity *account.Identity) error {
	encoded, err := json.Marshal(fileRecord{CurrentUser: identity})
	if err != nil {
		return fmt.Errorf("session_file_encode_failed: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return fmt.Errorf("session_file_write_failed: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session_file_rename_failed: %w", err)
	}
	return nil
}

// Clear removes the record file. An already-absent file is not an error.
func (s *FileStorage) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session_file_clear_failed: %w", err)
	}
	return nil
}

// Path returns the backing file location. Used by diagnostics.
func (s *FileStorage) Path() string {
	return filepath.Clean(s.path)
}
