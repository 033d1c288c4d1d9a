package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ExistsCache remembers user identifiers recently confirmed to exist.
// Key format: user:exists:<id>. Entries expire after ttl so a deleted
// account stops authorising requests within that window.
type ExistsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewExistsCache creates an ExistsCache wrapping the given Redis client.
func NewExistsCache(client *redis.Client, ttl time.Duration) *ExistsCache {
	return &ExistsCache{client: client, ttl: ttl}
}

// Seen reports whether this user identifier was confirmed recently.
func (c *ExistsCache) Seen(ctx context.Context, userID int64) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("existence check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the user was confirmed to exist (expires after ttl).
func (c *ExistsCache) Mark(ctx context.Context, userID int64) error {
	return c.client.Set(ctx, c.key(userID), "1", c.ttl).Err()
}

func (c *ExistsCache) key(userID int64) string {
	return fmt.Sprintf("user:exists:%d", userID)
}
