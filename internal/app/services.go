// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/searchbridge/search-proxy/config"
	"github.com/searchbridge/search-proxy/internal/cache"
	"github.com/searchbridge/search-proxy/internal/forward"
	"github.com/searchbridge/search-proxy/internal/provider"
	"github.com/searchbridge/search-proxy/internal/service"
)

// ServiceComponents holds the core proxy components.
type ServiceComponents struct {
	Cache     cache.TranslationCache
	Resolver  service.KeywordResolver
	Forwarder *forward.HTTPForwarder
}

// InitializeServices initializes the translation cache, orchestrator, and
// upstream forwarder.
func InitializeServices(cfg config.Config) *ServiceComponents {
	translationCache := initializeCache(cfg.Cache)

	opts := []service.Option{service.WithTimeout(cfg.Translation.Timeout)}
	if cfg.Translation.ProviderConfigured() {
		opts = append(opts, service.WithProvider(provider.NewOpenAITranslator(provider.OpenAIConfig{
			APIKey: cfg.Translation.APIKey,
			Model:  cfg.Translation.Model,
		})))
		log.Info().
			Str("model", cfg.Translation.Model).
			Str("target_lang", cfg.Translation.TargetLang).
			Msg("Translation provider configured")
	} else {
		log.Warn().Msg("No translation provider credentials; forwarding original keywords")
	}

	resolver := service.NewTranslatorService(translationCache, opts...)

	forwarder := forward.NewHTTPForwarder(forward.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		Timeout:     cfg.Upstream.Timeout,
		MaxFailures: cfg.Upstream.BreakerMaxFailures,
		BreakerWait: cfg.Upstream.BreakerTimeout,
	})

	return &ServiceComponents{
		Cache:     translationCache,
		Resolver:  resolver,
		Forwarder: forwarder,
	}
}

// initializeCache selects the cache backend. Redis failures fall back to the
// in-memory cache so a missing Redis never prevents startup.
func initializeCache(cfg config.CacheConfig) cache.TranslationCache {
	if cfg.Backend == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL, cfg.TTL)
		if err == nil {
			log.Info().Msg("Using Redis translation cache")
			return redisCache
		}
		log.Error().Err(err).Msg("Failed to connect to Redis - falling back to in-memory cache")
	}
	return cache.NewMemoryCache(cfg.Size, cfg.TTL)
}
