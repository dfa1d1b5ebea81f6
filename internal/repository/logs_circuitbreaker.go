package repository

import (
	"context"

	"github.com/searchbridge/search-proxy/internal/circuitbreaker"
	"github.com/searchbridge/search-proxy/internal/domain/model"
)

// SearchLogsRepositoryWithCircuitBreaker wraps SearchLogsRepository with
// circuit breaker protection so a failing MongoDB never slows request
// handling down.
type SearchLogsRepositoryWithCircuitBreaker struct {
	repo           SearchLogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSearchLogsRepositoryWithCircuitBreaker creates a new repository wrapper.
func NewSearchLogsRepositoryWithCircuitBreaker(repo SearchLogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *SearchLogsRepositoryWithCircuitBreaker {
	return &SearchLogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a log entry with circuit breaker protection. When the
// circuit is open the entry is silently discarded; audit logging is
// best-effort.
func (r *SearchLogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.SearchLogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query returns log entries with circuit breaker protection.
func (r *SearchLogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*model.SearchLogEntry, error) {
	var result []*model.SearchLogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

var _ SearchLogsRepositoryInterface = (*SearchLogsRepositoryWithCircuitBreaker)(nil)
