package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTranslationCache implements TranslationCache using Redis
// This is suitable for distributed deployments where multiple instances
// should share translated texts
type RedisTranslationCache struct {
	client *redis.Client
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisTranslationCache creates a new Redis-based translation cache
func NewRedisTranslationCache(cfg RedisConfig) (*RedisTranslationCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTranslationCache{client: client}, nil
}

// NewRedisTranslationCacheWithClient creates a cache with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisTranslationCacheWithClient(client *redis.Client) *RedisTranslationCache {
	return &RedisTranslationCache{client: client}
}

// Get returns the cached translation for the key, if present
func (c *RedisTranslationCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached translation: %w", err)
	}
	return value, true, nil
}

// Set stores a translation with the given TTL
func (c *RedisTranslationCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache translation: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisTranslationCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisTranslationCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisTranslationCache implements TranslationCache
var _ TranslationCache = (*RedisTranslationCache)(nil)
