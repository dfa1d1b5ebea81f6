// Package app provides router configuration.
package app

import (
	"github.com/sony/gobreaker"

	"github.com/searchbridge/search-proxy/config"
	"github.com/searchbridge/search-proxy/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.SearchHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewSearchHandler(services.Resolver, services.Forwarder, services.Cache, cfg.Translation.TargetLang)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterBreaker("upstream", func() (string, bool) {
		state := services.Forwarder.BreakerState()
		return state.String(), state != gobreaker.StateOpen
	})

	routerConfig := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		APIKeys:        cfg.Auth.APIKeys,
		EnableAuth:     cfg.Auth.Enabled,
		AdminJWTSecret: cfg.Auth.AdminJWTSecret,
		CORSOrigins:    cfg.Server.CORSOrigins,
	}

	if dbComponents != nil {
		routerConfig.LoggingService = dbComponents.LoggingService
		routerConfig.AsyncLogger = dbComponents.AsyncLogger
		if dbComponents.LogsCircuitBreaker != nil {
			cb := dbComponents.LogsCircuitBreaker
			healthHandler.RegisterBreaker("mongodb_logs", func() (string, bool) {
				return cb.State().String(), cb.IsHealthy()
			})
		}
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerConfig,
	}
}
