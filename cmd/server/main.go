package main

import (
	"context"
	"os"

	"github.com/favoritos/favorites-api/internal/api"
	"github.com/favoritos/favorites-api/internal/infrastructure/config"
	"github.com/favoritos/favorites-api/internal/infrastructure/db/postgres"
	"github.com/favoritos/favorites-api/internal/infrastructure/db/redis"
	"github.com/favoritos/favorites-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	db, err := postgres.Open(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		// Redis only caches user-existence checks; start degraded without it.
		log.Warn().Err(err).Msg("redis unavailable, auth gate will hit the store directly")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
