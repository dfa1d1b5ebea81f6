// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/searchbridge/search-proxy/config"
	"github.com/searchbridge/search-proxy/internal/http"
)

// InitializeApp creates and wires all application dependencies and returns
// the configured router.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Logger first; everything else logs through it.
	InitializeLogger()

	serviceComponents := InitializeServices(cfg)

	dbComponents := InitializeDatabase(cfg.Database)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
