package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLListing = 30 * time.Second // public post listing, refreshed often
	TTLPost    = 5 * time.Minute  // single post by slug
)

// Cache key prefixes
const (
	PrefixListing = "listing:"
	PrefixPost    = "post:"
)

// Service caches the public read surface. The server runs fully
// without it; every method tolerates a nil client.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// InvalidateAll drops every cached listing page and post.
	// Called after each editor mutation.
	InvalidateAll(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// ListingKey builds the cache key for a listing page
func ListingKey(page int) string {
	return fmt.Sprintf("%s%d", PrefixListing, page)
}

// PostKey builds the cache key for a post slug
func PostKey(slug string) string {
	return PrefixPost + slug
}

// redisCache Redis-backed implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis connection is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a cached value into dest
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value with a TTL
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes cached keys
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// InvalidateAll drops all listing pages and cached posts
func (c *redisCache) InvalidateAll(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	for _, prefix := range []string{PrefixListing, PrefixPost} {
		keys, err := c.client.Keys(ctx, prefix+"*").Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}

	return nil
}
