// Package service contains the business logic for the search proxy.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/searchbridge/search-proxy/internal/cache"
	"github.com/searchbridge/search-proxy/internal/domain/model"
	"github.com/searchbridge/search-proxy/internal/metrics"
	"github.com/searchbridge/search-proxy/internal/provider"
)

const defaultProviderTimeout = 8 * time.Second

// KeywordResolver resolves search keywords to their best-effort translation.
type KeywordResolver interface {
	// Resolve returns the text to forward upstream. It never fails: when the
	// provider is unavailable or errors, the original text is returned.
	// Callers must not invoke it with empty or whitespace-only text.
	Resolve(ctx context.Context, sourceText, targetLang string) model.TranslationOutcome
}

// TranslatorService orchestrates cache lookups, provider calls, and fallback
// for keyword translation. Translation is a best-effort enhancement: no
// failure here ever aborts the surrounding request.
type TranslatorService struct {
	cache      cache.TranslationCache
	translator provider.Translator
	timeout    time.Duration
}

// Option configures a TranslatorService.
type Option func(*TranslatorService)

// WithProvider sets the translation provider. A nil provider leaves the
// service in fallback-only mode (no credentials).
func WithProvider(t provider.Translator) Option {
	return func(s *TranslatorService) {
		s.translator = t
	}
}

// WithTimeout bounds individual provider calls.
func WithTimeout(d time.Duration) Option {
	return func(s *TranslatorService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewTranslatorService creates a translator service backed by the given cache.
func NewTranslatorService(c cache.TranslationCache, opts ...Option) *TranslatorService {
	s := &TranslatorService{
		cache:   c,
		timeout: defaultProviderTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve implements KeywordResolver.
func (s *TranslatorService) Resolve(ctx context.Context, sourceText, targetLang string) model.TranslationOutcome {
	if translated, ok := s.cache.Get(sourceText); ok {
		metrics.RecordTranslation("cache_hit", 0)
		return model.TranslationOutcome{Text: translated, CacheHit: true}
	}

	if s.translator == nil {
		metrics.RecordTranslation("fallback", 0)
		return model.TranslationOutcome{Text: sourceText}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	translated, err := s.translator.Translate(callCtx, sourceText, targetLang)
	duration := time.Since(start)

	if err != nil {
		log.Warn().
			Err(err).
			Str("target_lang", targetLang).
			Dur("duration", duration).
			Msg("Translation failed, falling back to original keywords")
		metrics.RecordTranslation("fallback", duration)
		return model.TranslationOutcome{Text: sourceText, Attempted: true}
	}

	if err := s.cache.Set(sourceText, translated); err != nil {
		// Cache write failures only cost future lookups.
		log.Warn().Err(err).Msg("Failed to cache translation")
	}

	metrics.RecordTranslation("translated", duration)
	return model.TranslationOutcome{Text: translated, Attempted: true}
}

var _ KeywordResolver = (*TranslatorService)(nil)
