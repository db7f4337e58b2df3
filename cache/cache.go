// Package cache keeps computed JSON responses in Redis for a short TTL. A nil
// *Cache is valid and caches nothing.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "civicpulse:cache:"

type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// New returns nil when rdb is nil or ttl is not positive.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &Cache{redis: rdb, ttl: ttl}
}

// Key joins parts into a namespaced cache key.
func Key(parts ...string) string {
	return keyPrefix + strings.Join(parts, ":")
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, b, c.ttl).Err()
}

// GetJSON decodes the value at key into dest; found is false on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Remember returns the cached value for key or computes, stores and returns it.
// Redis failures are logged and fall through to build.
func Remember[T any](ctx context.Context, c *Cache, key string, build func() (T, error)) (T, error) {
	var v T
	found, err := c.GetJSON(ctx, key, &v)
	if err != nil {
		slog.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		return v, nil
	}

	v, err = build()
	if err != nil {
		return v, err
	}
	if err := c.SetJSON(ctx, key, v); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
	return v, nil
}
