package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/favoritos/favorites-api/internal/infrastructure/config"
)

const connectTimeout = 5 * time.Second

// Connect initialises the Redis client backing the user-existence cache and
// validates connectivity with a ping. Redis is an optional dependency here:
// callers treat a failed connect as "run without the cache", not as fatal.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
