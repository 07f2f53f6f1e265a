package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTranslationCache_GetSet(t *testing.T) {
	cache := NewInMemoryTranslationCache()
	defer cache.Close()

	ctx := context.Background()

	t.Run("returns miss for unknown key", func(t *testing.T) {
		value, found, err := cache.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("returns stored value", func(t *testing.T) {
		err := cache.Set(ctx, "key-1", "Suchen|Konto", 1*time.Hour)
		require.NoError(t, err)

		value, found, err := cache.Get(ctx, "key-1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Suchen|Konto", value)
	})

	t.Run("overwrites existing value", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "key-2", "first", 1*time.Hour))
		require.NoError(t, cache.Set(ctx, "key-2", "second", 1*time.Hour))

		value, found, err := cache.Get(ctx, "key-2")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "second", value)
	})

	t.Run("treats expired entry as miss", func(t *testing.T) {
		err := cache.Set(ctx, "key-3", "short lived", 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		_, found, err := cache.Get(ctx, "key-3")
		require.NoError(t, err)
		assert.False(t, found, "expired entry should read as a miss")
	})
}

func TestInMemoryTranslationCache_Cleanup(t *testing.T) {
	cache := NewInMemoryTranslationCache()
	defer cache.Close()

	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "expired", "x", 1*time.Millisecond))
	require.NoError(t, cache.Set(ctx, "alive", "y", 1*time.Hour))

	time.Sleep(5 * time.Millisecond)
	cache.cleanup()

	assert.Equal(t, 1, cache.Size())

	value, found, err := cache.Get(ctx, "alive")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "y", value)
}

func TestInMemoryTranslationCache_CloseIsIdempotent(t *testing.T) {
	cache := NewInMemoryTranslationCache()

	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close())
}

func TestTranslationKey(t *testing.T) {
	key1 := TranslationKey("Search|Account", "de")
	key2 := TranslationKey("Search|Account", "de")
	key3 := TranslationKey("Search|Account", "fr")
	key4 := TranslationKey("Search|Profile", "de")

	assert.Equal(t, key1, key2, "same text and language should produce the same key")
	assert.NotEqual(t, key1, key3, "language should be part of the key")
	assert.NotEqual(t, key1, key4, "source text should be part of the key")
	assert.Contains(t, key1, "translation:de:")
}
