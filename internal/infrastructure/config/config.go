package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token; its absence is a fatal startup
	// condition, never a per-request error.
	JWTSecret string `env:"JWT_SECRET, required"`
	// TokenTTL bounds token lifetime. Zero means tokens never expire.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=0"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, required"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// UserCacheTTL bounds how long a confirmed user identifier is trusted
	// without re-checking the store.
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
