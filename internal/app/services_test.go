package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchbridge/search-proxy/config"
	"github.com/searchbridge/search-proxy/internal/cache"
)

func TestInitializeServices_Defaults(t *testing.T) {
	components := InitializeServices(testConfig())

	require.NotNil(t, components)
	assert.NotNil(t, components.Cache)
	assert.NotNil(t, components.Resolver)
	assert.NotNil(t, components.Forwarder)

	_, ok := components.Cache.(*cache.MemoryCache)
	assert.True(t, ok, "default backend should be the in-memory cache")
}

func TestInitializeServices_NoProviderFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Translation.APIKey = ""
	components := InitializeServices(cfg)

	outcome := components.Resolver.Resolve(context.Background(), "hello", "pt")
	assert.Equal(t, "hello", outcome.Text)
	assert.False(t, outcome.Attempted)
	assert.False(t, outcome.CacheHit)
}

func TestInitializeCache_UnknownBackendUsesMemory(t *testing.T) {
	cfg := config.CacheConfig{Backend: "bogus", Size: 10, TTL: 0}
	c := initializeCache(cfg)

	_, ok := c.(*cache.MemoryCache)
	assert.True(t, ok)
}

func TestInitializeCache_RedisUnreachableFallsBack(t *testing.T) {
	cfg := config.CacheConfig{
		Backend:  "redis",
		Size:     10,
		RedisURL: "redis://127.0.0.1:1", // nothing listening
	}
	c := initializeCache(cfg)

	_, ok := c.(*cache.MemoryCache)
	assert.True(t, ok, "unreachable Redis should fall back to memory")
}
