// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/prashant-2204/glassstream/internal/account"
)

// redisKey namespaces the single identity record.
const redisKey = "glassstream:" + RecordKey

// RedisStorage implements [Storage] on a Redis client, for hosts that share
// session state across processes. No TTL is applied: the record lives until
// explicit logout, matching the persisted-identity lifecycle.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage creates a Redis-backed storage.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

/*
Load retrieves and decodes the persisted identity.

Returns:
  - *account.Identity: The stored record.
  - error: ErrNoRecord when the key is absent, a decode or connectivity error
    otherwise.
*/
func (s *RedisStorage) Load(ctx context.Context) (*account.Identity, error) {
	raw, err := s.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("session_redis_get_failed: %w", err)
	}

	identity := &account.Identity{}
	if err := json.Unmarshal(raw, identity); err != nil {
		return nil, fmt.Errorf("session_redis_decode_failed: %w", err)
	}
	return identity, nil
}

// Save overwrites the identity record.
func (s *RedisStorage) Save(ctx context.Context, identity *account.Identity) error {
	encoded, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session_redis_encode_failed: %w", err)
	}
	if err := s.client.Set(ctx, redisKey, encoded, 0).Err(); err != nil {
		return fmt.Errorf("session_redis_set_failed: %w", err)
	}
	return nil
}

// Clear deletes the identity record.
func (s *RedisStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("session_redis_del_failed: %w", err)
	}
	return nil
}
