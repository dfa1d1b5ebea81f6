// Package http provides the HTTP handlers and router for the search proxy.
package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/searchbridge/search-proxy/internal/cache"
	"github.com/searchbridge/search-proxy/internal/forward"
	"github.com/searchbridge/search-proxy/internal/i18n"
	"github.com/searchbridge/search-proxy/internal/middleware"
	"github.com/searchbridge/search-proxy/internal/service"
)

// KeywordsParam is the query parameter carrying translatable search keywords.
const KeywordsParam = "keywords"

// Diagnostic headers describing how the keywords were resolved.
const (
	HeaderTranslationAttempted = "X-Translation-Attempted"
	HeaderTranslationCacheHit  = "X-Translation-Cache-Hit"
	HeaderKeywordsOriginal     = "X-Keywords-Original"
	HeaderKeywordsResolved     = "X-Keywords-Resolved"
)

// SearchHandler proxies search requests to the upstream backend, translating
// the keywords parameter on the way through.
type SearchHandler struct {
	resolver   service.KeywordResolver
	forwarder  forward.SearchForwarder
	cache      cache.TranslationCache
	targetLang string
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(resolver service.KeywordResolver, forwarder forward.SearchForwarder, c cache.TranslationCache, targetLang string) *SearchHandler {
	return &SearchHandler{
		resolver:   resolver,
		forwarder:  forwarder,
		cache:      c,
		targetLang: targetLang,
	}
}

// Search handles GET /api/search requests.
//
// Keywords, when present and non-blank, are resolved through the translation
// orchestrator and substituted into the forwarded parameter set; every other
// parameter passes through untouched. The upstream status, body, and content
// type are relayed verbatim, decorated with diagnostic headers describing the
// translation outcome.
func (h *SearchHandler) Search(c *gin.Context) {
	params := c.Request.URL.Query()

	keywords := strings.TrimSpace(params.Get(KeywordsParam))
	if keywords == "" {
		// No usable keywords: strip the field, skip orchestration entirely.
		params.Del(KeywordsParam)
	} else {
		outcome := h.resolver.Resolve(c.Request.Context(), keywords, h.targetLang)
		params.Set(KeywordsParam, outcome.Text)

		c.Header(HeaderTranslationAttempted, strconv.FormatBool(outcome.Attempted))
		c.Header(HeaderTranslationCacheHit, strconv.FormatBool(outcome.CacheHit))
		c.Header(HeaderKeywordsOriginal, keywords)
		c.Header(HeaderKeywordsResolved, outcome.Text)

		c.Set(middleware.KeywordsOriginalKey, keywords)
		c.Set(middleware.KeywordsResolvedKey, outcome.Text)
		c.Set(middleware.TranslationOutcome, outcome.Outcome(keywords))
	}

	result, err := h.forwarder.Forward(c.Request.Context(), params)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("Upstream search request failed")
		NewResponseBuilder(c).Error(http.StatusBadGateway, i18n.ErrKeyUpstreamUnavailable, err)
		return
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(result.StatusCode, contentType, result.Body)
}

// InvalidateCache handles POST /api/admin/cache/invalidate requests.
func (h *SearchHandler) InvalidateCache(c *gin.Context) {
	if err := h.cache.Clear(); err != nil {
		log.Error().Err(err).Msg("Failed to clear translation cache")
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	log.Info().
		Str("admin_subject", c.GetString("admin_subject")).
		Msg("Translation cache invalidated")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
