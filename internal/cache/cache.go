// Package cache provides translation caching implementations.
package cache

import "strings"

// TranslationCache is the interface for keyword translation caching.
// Implementations normalize keys themselves, so lookups are insensitive to
// case and surrounding whitespace.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false if
	// not found or expired.
	Get(sourceText string) (string, bool)

	// Set stores a translation keyed by the normalized source text.
	Set(sourceText, translated string) error

	// Clear removes all entries.
	Clear() error
}

// Normalize case-folds and trims a cache key.
func Normalize(sourceText string) string {
	return strings.ToLower(strings.TrimSpace(sourceText))
}
