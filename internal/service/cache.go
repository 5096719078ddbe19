package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small TTL cache over Redis. A nil client disables caching, so
// services can run without Redis in tests and local setups; every method is
// best-effort and never fails the surrounding operation.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a cache with the given TTL. client may be nil.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{redis: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest and reports whether a
// usable entry was found.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores value under key for the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.ttl).Err()
}

// Delete drops the entry for key.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil || c.redis == nil {
		return
	}
	_ = c.redis.Del(ctx, key).Err()
}
