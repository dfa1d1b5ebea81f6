// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/searchbridge/search-proxy/config"
	"github.com/searchbridge/search-proxy/internal/circuitbreaker"
	"github.com/searchbridge/search-proxy/internal/repository"
	"github.com/searchbridge/search-proxy/internal/service"
)

// DatabaseComponents holds the audit-log store components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	AsyncLogger        *service.AsyncLogger
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and the audit-log
// pipeline. Returns nil if the database is disabled or unreachable; the proxy
// runs fine without it.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without audit logs")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	logsRepo := repository.NewSearchLogsRepository(db)
	if err := logsRepo.EnsureIndexes(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to create logs TTL index (may already exist)")
	}

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepoWithCB := repository.NewSearchLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)
	asyncLogger := service.NewAsyncLogger(loggingService, service.DefaultAsyncLoggerConfig())

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     loggingService,
		AsyncLogger:        asyncLogger,
		LogsCircuitBreaker: logsCB,
	}
}

// Shutdown stops the async logger and closes the database connection.
func (d *DatabaseComponents) Shutdown(ctx context.Context) {
	if d == nil {
		return
	}
	if d.AsyncLogger != nil {
		d.AsyncLogger.Stop()
	}
	if d.DB != nil {
		if err := d.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
