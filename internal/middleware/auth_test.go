package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAPIKeyRouter(keys map[string]bool) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), APIKeyAuth(keys))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuth_DisabledWhenNoKeys(t *testing.T) {
	router := setupAPIKeyRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	router := setupAPIKeyRouter(map[string]bool{"secret": true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(APIKeyHeader, "secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_QueryFallback(t *testing.T) {
	router := setupAPIKeyRouter(map[string]bool{"secret": true})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?api_key=secret", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_Rejects(t *testing.T) {
	router := setupAPIKeyRouter(map[string]bool{"secret": true})

	tests := []struct {
		name string
		key  string
	}{
		{"missing key", ""},
		{"wrong key", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func signedAdminToken(t *testing.T, secret string, expiry time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"exp": time.Now().Add(expiry).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func setupAdminRouter(secret string) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), AdminJWTAuth(secret))
	router.POST("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAdminJWTAuth_ValidToken(t *testing.T) {
	router := setupAdminRouter("topsecret")

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedAdminToken(t, "topsecret", time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminJWTAuth_Rejects(t *testing.T) {
	router := setupAdminRouter("topsecret")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"wrong secret", "Bearer " + signedAdminToken(t, "othersecret", time.Hour)},
		{"expired", "Bearer " + signedAdminToken(t, "topsecret", -time.Hour)},
		{"garbage", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
