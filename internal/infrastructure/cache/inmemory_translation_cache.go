package cache

import (
	"context"
	"sync"
	"time"
)

// entry represents a cached translation with expiration
type entry struct {
	value     string
	expiresAt time.Time
}

// InMemoryTranslationCache implements TranslationCache using an in-memory map
// This is suitable for single-instance deployments and testing
type InMemoryTranslationCache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryTranslationCache creates a new in-memory translation cache
// It starts a background goroutine to clean up expired entries
func NewInMemoryTranslationCache() *InMemoryTranslationCache {
	c := &InMemoryTranslationCache{
		entries:  make(map[string]entry),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

// Get returns the cached translation for the key, if present and not expired
func (c *InMemoryTranslationCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[key]
	if !exists {
		return "", false, nil
	}

	if time.Now().After(e.expiresAt) {
		return "", false, nil // Expired, treat as missing
	}

	return e.value, true, nil
}

// Set stores a translation with the given TTL
func (c *InMemoryTranslationCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Close stops the cleanup goroutine and releases resources
// Safe to call multiple times
func (c *InMemoryTranslationCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryTranslationCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes expired entries from the cache
func (c *InMemoryTranslationCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Size returns the number of entries in the cache (for testing/monitoring)
func (c *InMemoryTranslationCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure InMemoryTranslationCache implements TranslationCache
var _ TranslationCache = (*InMemoryTranslationCache)(nil)
