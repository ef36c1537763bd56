// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/prashant-2204/glassstream/internal/account"
)

// badgerKey namespaces the single identity record.
var badgerKey = []byte("session:" + RecordKey)

// BadgerStorage implements [Storage] on an embedded Badger database, for
// hosts that already carry one and want crash-durable session state without
// an external service.
type BadgerStorage struct {
	db *badger.DB
}

// NewBadgerStorage creates a Badger-backed storage on an opened database.
// The caller owns the database lifecycle.
func NewBadgerStorage(db *badger.DB) *BadgerStorage {
	return &BadgerStorage{db: db}
}

/*
Load retrieves and decodes the persisted identity.

Returns:
  - *account.Identity: The stored record.
  - error: ErrNoRecord when the key is absent, a decode or storage error
    otherwise.
*/
func (s *BadgerStorage) Load(_ context.Context) (*account.Identity, error) {
	identity := &account.Identity{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoRecord
		}
		if err != nil {
			return fmt.Errorf("session_badger_get_failed: %w", err)
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, identity); err != nil {
				return fmt.Errorf("session_badger_decode_failed: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// Save overwrites the identity record.
func (s *BadgerStorage) Save(_ context.Context, identity *account.Identity) error {
	encoded, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session_badger_encode_failed: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(badgerKey, encoded); err != nil {
			return fmt.Errorf("session_badger_set_failed: %w", err)
		}
		return nil
	})
}

// Clear deletes the identity record. Deleting an absent key is not an error.
func (s *BadgerStorage) Clear(_ context.Context) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(badgerKey); err != nil {
			return fmt.Errorf("session_badger_delete_failed: %w", err)
		}
		return nil
	})
}
