package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"textgate/internal/infrastructure/config"
)

// NewRedisClient creates a new Redis client and verifies connectivity.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

const sessionKeyPrefix = "session:"

// SessionCache caches token-to-user lookups in Redis. Misses and Redis
// failures both read as cache misses; the session store stays the source
// of truth.
type SessionCache struct {
	client *redis.Client
}

// NewSessionCache creates a session cache over the given client.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

// Get returns the cached user ID for a token.
func (c *SessionCache) Get(ctx context.Context, token string) (string, bool) {
	value, err := c.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set caches a token-to-user mapping for ttl.
func (c *SessionCache) Set(ctx context.Context, token, userID string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	_ = c.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err()
}

// Delete drops a cached token, used on logout.
func (c *SessionCache) Delete(ctx context.Context, token string) {
	_ = c.client.Del(ctx, sessionKeyPrefix+token).Err()
}
