package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TranslationCache stores translated batch texts so repeated requests
// for the same source text and language skip the external provider.
type TranslationCache interface {
	// Get returns the cached translation and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a translation with the given time-to-live
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// TranslationKey derives a cache key from the source text and target
// language. The source text is hashed so a changed field invalidates
// the entry while the key stays short.
func TranslationKey(sourceText, targetLanguage string) string {
	sum := sha256.Sum256([]byte(sourceText))
	return "translation:" + targetLanguage + ":" + hex.EncodeToString(sum[:])
}
