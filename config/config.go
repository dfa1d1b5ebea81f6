// Package config provides configuration management for the search proxy.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server      ServerConfig
	Translation TranslationConfig
	Cache       CacheConfig
	Upstream    UpstreamConfig
	Auth        AuthConfig
	Database    DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// TranslationConfig holds translation provider configuration.
// An empty APIKey disables the provider entirely; the proxy then forwards
// original keywords untranslated.
type TranslationConfig struct {
	TargetLang string
	APIKey     string
	Model      string
	Timeout    time.Duration
}

// CacheConfig holds translation cache configuration.
type CacheConfig struct {
	Backend  string
	Size     int
	TTL      time.Duration
	RedisURL string
}

// UpstreamConfig holds the upstream search backend configuration.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
	// Circuit breaker settings for upstream calls
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled        bool
	APIKeys        map[string]bool
	AdminJWTSecret string
}

// DatabaseConfig holds MongoDB configuration for search audit logs.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Translation: TranslationConfig{
			TargetLang: getEnv("TARGET_LANG", "pt"),
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			Model:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout:    getEnvDuration("TRANSLATE_TIMEOUT", 8*time.Second),
		},
		Cache: CacheConfig{
			Backend:  getEnv("CACHE_BACKEND", "memory"),
			Size:     getEnvInt("CACHE_SIZE", 100),
			TTL:      getEnvDuration("CACHE_TTL", time.Hour),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Upstream: UpstreamConfig{
			BaseURL:            getEnv("UPSTREAM_URL", "http://localhost:9200/search"),
			Timeout:            getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			BreakerMaxFailures: uint32(getEnvInt("UPSTREAM_BREAKER_FAILURES", 5)),
			BreakerTimeout:     getEnvDuration("UPSTREAM_BREAKER_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:        getEnvBool("AUTH_ENABLED", false),
			APIKeys:        parseAPIKeys(os.Getenv("API_KEYS")),
			AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "search_proxy"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// ProviderConfigured reports whether a translation provider credential is present.
func (c TranslationConfig) ProviderConfigured() bool {
	return c.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
