// Package model defines the core domain types for the search proxy.
package model

// TranslationOutcome is the per-request result of resolving search keywords.
// It always carries a usable Text: either the translated keywords or, when
// translation could not be obtained, the original source text.
type TranslationOutcome struct {
	// Text is the text that will be forwarded upstream.
	Text string
	// CacheHit is true only if Text was resolved from a live cache entry.
	CacheHit bool
	// Attempted is true only if the translation provider was actually
	// invoked, regardless of whether the call succeeded.
	Attempted bool
}

// Outcome label used for metrics and audit logs.
func (o TranslationOutcome) Outcome(original string) string {
	switch {
	case o.CacheHit:
		return "cache_hit"
	case o.Attempted && o.Text != original:
		return "translated"
	default:
		return "fallback"
	}
}
