package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore is a best-effort key/value store. Implementations must never
// surface infrastructure errors to the caller: a broken or missing store
// behaves as a permanent cache miss.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Del(ctx context.Context, key string)
}

type redisCache struct {
	client *redis.Client
}

type disabledCache struct{}

// NewCacheStore connects to Redis when a URL is configured. Without one it
// returns a no-op store, so the rest of the system runs in database-only mode.
func NewCacheStore(redisURL string) CacheStore {
	if redisURL == "" {
		log.Println("⚠️ No REDIS_URL found. Cache running in safe mode (database only).")
		return &disabledCache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("⚠️ Invalid REDIS_URL (%v). Cache running in safe mode.", err)
		return &disabledCache{}
	}

	log.Println("🔌 Found REDIS_URL. Connecting...")
	return &redisCache{client: redis.NewClient(opts)}
}

// Get implements CacheStore.
func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("⚠️ Redis GET failed for %s: %v", key, err)
		return "", false
	}
	return value, true
}

// Set implements CacheStore.
func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("⚠️ Redis SET failed for %s: %v", key, err)
	}
}

// Del implements CacheStore.
func (c *redisCache) Del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Printf("⚠️ Redis DEL failed for %s: %v", key, err)
	}
}

func (c *disabledCache) Get(_ context.Context, _ string) (string, bool) { return "", false }

func (c *disabledCache) Set(_ context.Context, _, _ string, _ time.Duration) {}

func (c *disabledCache) Del(_ context.Context, _ string) {}
