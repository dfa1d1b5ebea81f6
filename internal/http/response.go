package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/searchbridge/search-proxy/internal/domain/dto"
	"github.com/searchbridge/search-proxy/internal/i18n"
	"github.com/searchbridge/search-proxy/internal/middleware"
)

// ResponseBuilder builds standardized JSON error responses. Success responses
// are not built here: the proxy relays upstream bodies verbatim.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Error sends an error response with the given status code and message key.
// The message is translated to the caller's locale; err is attached to the
// context for the error-handler middleware to log, never echoed to the client.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	locale := i18n.GetLocale(b.c)

	resp := dto.ErrorResponse{
		Error:     dto.ErrCodeFromStatus(statusCode),
		Message:   i18n.GetTranslator().Translate(messageKey, locale),
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
}
