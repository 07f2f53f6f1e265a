package cache

import (
	"fmt"

	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// TranslationCacheFactory creates translation caches based on configuration
type TranslationCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// TranslationCacheFactoryOption is a functional option for configuring the factory
type TranslationCacheFactoryOption func(*TranslationCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) TranslationCacheFactoryOption {
	return func(f *TranslationCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache when Redis is unavailable
// Default is true (allow fallback)
func WithInMemoryFallback(allow bool) TranslationCacheFactoryOption {
	return func(f *TranslationCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewTranslationCacheFactory creates a new factory
func NewTranslationCacheFactory(cfg config.RedisConfig, opts ...TranslationCacheFactoryOption) *TranslationCacheFactory {
	f := &TranslationCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-based translation cache
func (f *TranslationCacheFactory) CreateRedisCache() (TranslationCache, error) {
	redisCfg := RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}

	cache, err := NewRedisTranslationCache(redisCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis translation cache: %w", err)
	}

	return cache, nil
}

// CreateInMemoryCache creates an in-memory translation cache
// This is suitable for single-instance deployments and testing
// WARNING: In-memory caches do not share state across process instances,
// so each instance pays the translation cost separately
func (f *TranslationCacheFactory) CreateInMemoryCache() TranslationCache {
	return NewInMemoryTranslationCache()
}

// CreateCache creates a translation cache for the configured backend
// The "redis" backend falls back to in-memory when Redis is unavailable
// and AllowInMemoryFallback is true
func (f *TranslationCacheFactory) CreateCache(backend string) (TranslationCache, error) {
	switch backend {
	case "memory":
		f.logger.Info("using in-memory translation cache")
		return f.CreateInMemoryCache(), nil
	case "redis":
		cache, err := f.CreateRedisCache()
		if err == nil {
			f.logger.Info("using Redis translation cache")
			return cache, nil
		}

		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required for translation cache but unavailable: %w", err)
		}

		f.logger.Warn("Redis unavailable, falling back to in-memory translation cache",
			zap.Error(err),
		)
		return f.CreateInMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unknown translation cache backend: %q", backend)
	}
}
