package i18n

import "context"

// Translator turns text from its source language into a target
// language. Implementations wrap an external machine-translation
// provider and must preserve the batch delimiter verbatim.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// BundleRepository defines persistence operations for the UI copy bundle
type BundleRepository interface {
	// Get returns the storefront's source-language bundle
	Get(ctx context.Context) (*LocalizationBundle, error)
	Save(ctx context.Context, bundle *LocalizationBundle) error
}
