package i18n

// Message keys for translatable user-facing messages.
const (
	ErrKeyInternalError       = "error.internal"
	ErrKeyUpstreamUnavailable = "error.upstream_unavailable"
	ErrKeyRateLimitExceeded   = "error.rate_limit_exceeded"
	ErrKeyUnauthorized        = "error.unauthorized"
)
