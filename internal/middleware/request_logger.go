package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/searchbridge/search-proxy/internal/domain/model"
	"github.com/searchbridge/search-proxy/internal/logger"
	"github.com/searchbridge/search-proxy/internal/service"
)

// Context keys the search handler fills in for the audit trail.
const (
	KeywordsOriginalKey = "keywords_original"
	KeywordsResolvedKey = "keywords_resolved"
	TranslationOutcome  = "translation_outcome"
)

// RequestLogger returns a middleware that logs HTTP request details in JSON
// format and, when an audit logger is configured, persists a search audit
// entry asynchronously.
func RequestLogger(loggingService service.LoggingService, asyncLogger *service.AsyncLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService == nil {
			return
		}

		entry := &model.SearchLogEntry{
			Timestamp:        time.Now(),
			Level:            logLevelForStatus(statusCode),
			Message:          "HTTP request",
			RequestID:        requestID,
			Method:           method,
			Path:             path,
			StatusCode:       statusCode,
			Duration:         latency.Milliseconds(),
			IP:               ip,
			Keywords:         c.GetString(KeywordsOriginalKey),
			ResolvedKeywords: c.GetString(KeywordsResolvedKey),
			Outcome:          c.GetString(TranslationOutcome),
		}

		if asyncLogger != nil {
			asyncLogger.Log(entry)
			return
		}

		// No worker pool configured: fall back to goroutine-per-request.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = loggingService.CreateLog(ctx, entry)
		}()
	}
}

func logLevelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
