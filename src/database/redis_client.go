package database

import (
	"context"
	"fmt"
	"time"

	"mergington-activities/src/config"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds the Redis client shared by health checks. Returns nil
// when no REDIS_URI is configured.
func NewRedis(cfg config.Config) *redis.Client {
	if !cfg.NotificationsEnabled() {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisURI,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// PingRedis checks that the broker answers.
func PingRedis(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
