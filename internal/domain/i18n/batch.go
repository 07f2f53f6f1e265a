package i18n

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// Delimiter joins segments into the single text sent to the
// translation provider. Source segments must not contain it, or the
// translated text could not be split back unambiguously.
const Delimiter = "|"

// JoinSegments concatenates segments with the batch delimiter
func JoinSegments(segments []string) (string, error) {
	for _, segment := range segments {
		if strings.Contains(segment, Delimiter) {
			return "", shared.ErrTranslationFormat
		}
	}

	return strings.Join(segments, Delimiter), nil
}

// SplitSegments splits a translated batch back into segments. The
// provider must preserve the delimiters: any other segment count
// means the translation cannot be mapped back onto its source fields.
func SplitSegments(text string, want int) ([]string, error) {
	segments := strings.Split(text, Delimiter)
	if len(segments) != want {
		return nil, shared.ErrTranslationFormat
	}

	for i, segment := range segments {
		segments[i] = strings.TrimSpace(segment)
	}

	return segments, nil
}
