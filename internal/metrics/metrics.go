// Package metrics provides Prometheus metrics collection for the search proxy.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// TranslationsTotal tracks keyword resolutions by outcome.
	// Outcomes: cache_hit, translated, fallback.
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translations_total",
			Help: "Total number of keyword translation resolutions",
		},
		[]string{"outcome"},
	)

	// TranslationDuration tracks translation provider call duration.
	TranslationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translation_duration_seconds",
			Help:    "Translation provider call duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 4.0, 8.0},
		},
	)

	// CacheOperationsTotal tracks translation cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of translation cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current translation cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current translation cache size",
		},
	)

	// UpstreamRequestDuration tracks upstream search backend call duration.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream search request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status_code"},
	)

	// UpstreamRequestTotal tracks upstream search backend calls by result.
	UpstreamRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of upstream search requests",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordTranslation records metrics for a keyword resolution.
func RecordTranslation(outcome string, duration time.Duration) {
	TranslationsTotal.WithLabelValues(outcome).Inc()
	if duration > 0 {
		TranslationDuration.Observe(duration.Seconds())
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordUpstreamRequest records metrics for an upstream search call.
func RecordUpstreamRequest(statusCode int, duration time.Duration, result string) {
	UpstreamRequestDuration.WithLabelValues(strconv.Itoa(statusCode)).Observe(duration.Seconds())
	UpstreamRequestTotal.WithLabelValues(result).Inc()
}

// UpdateCacheSize updates the cache size gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}
