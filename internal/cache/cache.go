// Package cache is a Redis read-through cache for JSON encoded projections.
// A nil *Cache is valid and behaves as an always-empty cache.
package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Sentinel comparison
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging of cache failures
)

// Cache stores values in Redis under a key prefix
type Cache struct {
	rdb    *redis.Client // Redis client
	ttl    time.Duration // Lifetime of every entry
	prefix string        // Namespace for every key
}

// New returns a cache backed by rdb. A nil client yields a nil cache.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl, prefix: "backoffice:"}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, c.prefix+key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false // Key does not exist
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache get failed")
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache entry corrupt")
		return false
	}
	return true
}

// Set stores value in Redis with the configured TTL
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache marshal failed")
		return
	}
	if err := c.rdb.Set(ctx, c.prefix+key, b, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache set failed")
	}
}

// Delete removes keys from Redis
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k // Namespaced key
	}
	if err := c.rdb.Del(ctx, full...).Err(); err != nil {
		logrus.WithError(err).WithField("keys", keys).Warn("cache delete failed")
	}
}

// Ping checks the Redis connection
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
