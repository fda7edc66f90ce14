// Package cache holds Redis-backed advisory caches. Everything here is
// optional: callers must work identically with the cache absent.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"atende/internal/application/admin/usecases"
)

// AdminFlagsStore is a short-TTL cache of {is_admin, is_owner} per user,
// consulted by the access check. Grant and revoke invalidate the entry so a
// stale positive never outlives the TTL.
type AdminFlagsStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAdminFlagsStore(client *redis.Client, ttl time.Duration) *AdminFlagsStore {
	return &AdminFlagsStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *AdminFlagsStore) Get(ctx context.Context, userID uint) (*usecases.AdminFlags, error) {
	data, err := s.client.Get(ctx, s.buildKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read admin flags from redis: %w", err)
	}

	var flags usecases.AdminFlags
	if err := json.Unmarshal([]byte(data), &flags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin flags: %w", err)
	}
	return &flags, nil
}

func (s *AdminFlagsStore) Set(ctx context.Context, userID uint, flags usecases.AdminFlags) error {
	data, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("failed to marshal admin flags: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store admin flags in redis: %w", err)
	}
	return nil
}

func (s *AdminFlagsStore) Invalidate(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, s.buildKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate admin flags in redis: %w", err)
	}
	return nil
}

func (s *AdminFlagsStore) buildKey(userID uint) string {
	return fmt.Sprintf("admin:flags:%d", userID)
}
