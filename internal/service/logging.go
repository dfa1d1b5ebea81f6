package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/searchbridge/search-proxy/internal/domain/model"
	"github.com/searchbridge/search-proxy/internal/repository"
)

// LoggingService defines the interface for search audit log operations.
type LoggingService interface {
	// CreateLog stores a single audit entry.
	CreateLog(ctx context.Context, entry *model.SearchLogEntry) error

	// QueryLogs retrieves audit entries matching the query options.
	QueryLogs(ctx context.Context, opts repository.LogQueryOptions) ([]*model.SearchLogEntry, error)
}

// LoggingServiceImpl implements LoggingService on top of the Mongo repository.
type LoggingServiceImpl struct {
	repo repository.SearchLogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.SearchLogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores a single audit entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.SearchLogEntry) error {
	return s.repo.Create(ctx, entry)
}

// QueryLogs retrieves audit entries matching the query options.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts repository.LogQueryOptions) ([]*model.SearchLogEntry, error) {
	return s.repo.Query(ctx, opts)
}

// AsyncLoggerConfig holds configuration for the async audit writer.
type AsyncLoggerConfig struct {
	BufferSize   int
	NumWorkers   int
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async writer.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger provides buffered, worker-pool based audit log writes so
// persistence never sits on the request path. Entries are dropped when the
// buffer is full.
type AsyncLogger struct {
	loggingService LoggingService
	entryCh        chan *model.SearchLogEntry
	wg             sync.WaitGroup
	stopCh         chan struct{}
	writeTimeout   time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncLogger creates a new async logger. Returns nil when no logging
// service is configured.
func NewAsyncLogger(loggingService LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.SearchLogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		writeTimeout:   cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry, ok := <-al.entryCh:
			if !ok {
				return
			}
			al.writeEntry(entry)
		case <-al.stopCh:
			// Drain remaining entries before stopping
			for {
				select {
				case entry := <-al.entryCh:
					al.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeEntry(entry *model.SearchLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLog(ctx, entry); err != nil {
		atomic.AddInt64(&al.errors, 1)
		log.Warn().Err(err).Msg("Failed to write search audit entry")
	} else {
		atomic.AddInt64(&al.written, 1)
	}
}

// Log enqueues an audit entry for async processing.
// Returns false if the buffer is full and the entry was dropped.
func (al *AsyncLogger) Log(entry *model.SearchLogEntry) bool {
	select {
	case al.entryCh <- entry:
		atomic.AddInt64(&al.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&al.dropped, 1)
		return false
	}
}

// Stop gracefully shuts down the async logger, flushing pending entries.
func (al *AsyncLogger) Stop() {
	close(al.stopCh)
	al.wg.Wait()
	close(al.entryCh)
}

// Written returns the number of entries successfully persisted.
func (al *AsyncLogger) Written() int64 {
	return atomic.LoadInt64(&al.written)
}

// Dropped returns the number of entries discarded due to a full buffer.
func (al *AsyncLogger) Dropped() int64 {
	return atomic.LoadInt64(&al.dropped)
}
