// Package main is the entry point for the search-proxy application.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/searchbridge/search-proxy/config"
	"github.com/searchbridge/search-proxy/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
