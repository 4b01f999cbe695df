package main

import (
	"time"

	"insightchat/internal/analytics"
	"insightchat/internal/cache"
	"insightchat/internal/config"
	"insightchat/internal/insights"
	"insightchat/internal/server"
	"insightchat/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Initialize analytics store connection
	db, err := analytics.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Analytics store connection failed")
		logger.Info().Msg("Starting server without analytics store connection")
	} else {
		logger.Info().Msg("Analytics store connection established successfully")
	}

	var reader analytics.Reader = analytics.NewStore(db)
	if cfg.CacheTTLMinutes > 0 {
		ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
		reader = analytics.WithCache(reader, cache.New(), ttl)
	}

	catalog := config.NewCatalog()
	engine := insights.New(reader, catalog, logger)
	sessions := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)

	// Create and initialize server
	srv := server.New(cfg, db, catalog, engine, sessions, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
