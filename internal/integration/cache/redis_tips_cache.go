// Package cache implements cache adapters backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smart-expense/backend/internal/application/adapter"
)

// RedisTipsCache implements adapter.TipsCache on Redis. Entries are JSON
// payloads under "tips:<user>:<month>:<fingerprint>" keys, and the member
// keys for each (user, month) are tracked in a companion set so invalidation
// can drop all fingerprints at once.
type RedisTipsCache struct {
	client *redis.Client
}

// NewRedisTipsCache creates a new RedisTipsCache instance.
func NewRedisTipsCache(client *redis.Client) *RedisTipsCache {
	return &RedisTipsCache{client: client}
}

// Get retrieves a cached advisor result.
func (c *RedisTipsCache) Get(ctx context.Context, key string) (*adapter.SavingsTipsResult, bool, error) {
	payload, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read tips cache: %w", err)
	}

	var result adapter.SavingsTipsResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		// A corrupt entry behaves like a miss; it will be overwritten.
		return nil, false, nil
	}

	return &result, true, nil
}

// Set stores an advisor result with a TTL and registers the key in the
// (user, month) index set.
func (c *RedisTipsCache) Set(ctx context.Context, key string, result *adapter.SavingsTipsResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal tips result: %w", err)
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, payload, ttl)
	if index, ok := indexKeyFor(key); ok {
		pipe.SAdd(ctx, index, key)
		pipe.Expire(ctx, index, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write tips cache: %w", err)
	}

	return nil
}

// Invalidate drops every cached fingerprint for a user and month.
func (c *RedisTipsCache) Invalidate(ctx context.Context, userID, month string) error {
	index := fmt.Sprintf("tips-index:%s:%s", userID, month)

	keys, err := c.client.SMembers(ctx, index).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read tips cache index: %w", err)
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate tips cache: %w", err)
		}
	}
	return c.client.Del(ctx, index).Err()
}

// indexKeyFor derives the (user, month) index key from a full cache key of
// the form "tips:<user>:<month>:<fingerprint>". None of the segments except
// the key prefix contain a colon.
func indexKeyFor(key string) (string, bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 4 || parts[0] != "tips" {
		return "", false
	}
	return fmt.Sprintf("tips-index:%s:%s", parts[1], parts[2]), true
}
