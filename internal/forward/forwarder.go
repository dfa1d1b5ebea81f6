// Package forward relays search requests to the upstream backend.
package forward

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/searchbridge/search-proxy/internal/metrics"
)

// maxResponseBytes caps how much of an upstream body is buffered.
const maxResponseBytes = 10 << 20 // 10MB

// Result is an upstream response relayed verbatim to the caller.
type Result struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// SearchForwarder forwards a parameter set to the upstream search backend.
type SearchForwarder interface {
	// Forward performs the upstream lookup. Upstream HTTP error statuses are
	// not errors; they are returned in Result for verbatim relay. An error
	// means the backend could not be reached at all.
	Forward(ctx context.Context, params url.Values) (*Result, error)
}

// HTTPForwarder is an HTTP client-backed SearchForwarder with a circuit
// breaker around the upstream.
type HTTPForwarder struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// Config holds HTTPForwarder configuration.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	MaxFailures uint32
	BreakerWait time.Duration
}

// NewHTTPForwarder creates a forwarder for the given upstream base URL.
func NewHTTPForwarder(cfg Config) *HTTPForwarder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	breakerWait := cfg.BreakerWait
	if breakerWait <= 0 {
		breakerWait = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "upstream-search",
		Timeout: breakerWait,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("circuit_breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state change")
		},
	})

	return &HTTPForwarder{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

// Forward implements SearchForwarder.
func (f *HTTPForwarder) Forward(ctx context.Context, params url.Values) (*Result, error) {
	start := time.Now()

	res, err := f.breaker.Execute(func() (interface{}, error) {
		return f.do(ctx, params)
	})
	duration := time.Since(start)

	if err != nil {
		metrics.RecordUpstreamRequest(0, duration, "error")
		return nil, fmt.Errorf("forward search request: %w", err)
	}

	result := res.(*Result)
	metrics.RecordUpstreamRequest(result.StatusCode, duration, "success")
	return result, nil
}

func (f *HTTPForwarder) do(ctx context.Context, params url.Values) (*Result, error) {
	reqURL := f.baseURL
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// BreakerState returns the current circuit breaker state for health reporting.
func (f *HTTPForwarder) BreakerState() gobreaker.State {
	return f.breaker.State()
}

var _ SearchForwarder = (*HTTPForwarder)(nil)
