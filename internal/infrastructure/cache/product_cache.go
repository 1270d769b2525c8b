package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProductCache caches serialized product reads in Redis. Lookups are
// best-effort: a cache failure never fails the read path.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewProductCache creates a product cache with the given TTL
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{
		client: client,
		ttl:    ttl,
		prefix: "catalog:product:",
	}
}

func (c *ProductCache) key(id string) string {
	return c.prefix + id
}

// Get loads a cached product into dest. Returns false on a miss.
func (c *ProductCache) Get(ctx context.Context, id string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("product cache get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("product cache decode: %w", err)
	}
	return true, nil
}

// Set stores a product under its ID with the configured TTL
func (c *ProductCache) Set(ctx context.Context, id string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("product cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(id), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("product cache set: %w", err)
	}
	return nil
}

// Invalidate drops a product from the cache, called on any write
func (c *ProductCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("product cache invalidate: %w", err)
	}
	return nil
}
