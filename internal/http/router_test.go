package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchbridge/search-proxy/internal/cache"
	"github.com/searchbridge/search-proxy/internal/domain/model"
)

func newRouterUnderTest(cfg RouterConfig) (*gin.Engine, *fakeForwarder) {
	fwd := &fakeForwarder{result: upstreamOK(`{"results":[]}`)}
	resolver := &fakeResolver{outcome: model.TranslationOutcome{Text: "cachorro", Attempted: true}}
	handler := NewSearchHandler(resolver, fwd, cache.NewMemoryCache(10, time.Minute), "pt")
	return NewRouter(handler, NewHealthHandler(), cfg), fwd
}

func TestRouter_SearchRoute(t *testing.T) {
	router, fwd := newRouterUnderTest(DefaultRouterConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?keywords=perro", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fwd.calls)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_InfrastructureRoutes(t *testing.T) {
	router, _ := newRouterUnderTest(DefaultRouterConfig())

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_APIKeyAuthEnabled(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]bool{"valid-key": true}
	router, _ := newRouterUnderTest(cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	req.Header.Set("X-API-Key", "valid-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Health stays open regardless of auth.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.AdminJWTSecret = "admin-secret"
	router, _ := newRouterUnderTest(cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/cache/invalidate", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("admin-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/cache/invalidate", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AdminRoutesAbsentWithoutSecret(t *testing.T) {
	router, _ := newRouterUnderTest(DefaultRouterConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/cache/invalidate", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RateLimitApplied(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 2
	cfg.RateWindow = time.Minute
	router, _ := newRouterUnderTest(cfg)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
