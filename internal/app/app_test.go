package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/searchbridge/search-proxy/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Translation: config.TranslationConfig{
			TargetLang: "pt",
			Timeout:    8 * time.Second,
		},
		Cache: config.CacheConfig{
			Backend: "memory",
			Size:    100,
			TTL:     time.Hour,
		},
		Upstream: config.UpstreamConfig{
			BaseURL: "http://localhost:9200/search",
			Timeout: 10 * time.Second,
		},
	}
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "default config"},
		{
			name: "auth enabled",
			mutate: func(cfg *config.Config) {
				cfg.Auth.Enabled = true
				cfg.Auth.APIKeys = map[string]bool{"test-key": true}
			},
		},
		{
			name: "admin secret set",
			mutate: func(cfg *config.Config) {
				cfg.Auth.AdminJWTSecret = "secret"
			},
		},
		{
			name: "rate limit disabled",
			mutate: func(cfg *config.Config) {
				cfg.Server.RateLimit = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			router := InitializeApp(cfg)
			assert.NotNil(t, router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeApp_ProxiesSearch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":["a"]}`))
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.Upstream.BaseURL = upstream.URL
	router := InitializeApp(cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?keywords=hello", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":["a"]}`, w.Body.String())
	// No provider credentials: keywords pass through untranslated.
	assert.Equal(t, "false", w.Header().Get("X-Translation-Attempted"))
	assert.Equal(t, "hello", w.Header().Get("X-Keywords-Resolved"))
}
