package database

import (
	"mergington-activities/src/config"

	"github.com/hibiken/asynq"
)

// RedisClientOpt is the asynq connection config for both client and server.
func RedisClientOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisURI,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

// NewAsynqClient returns nil if Redis is not configured.
func NewAsynqClient(cfg config.Config) *asynq.Client {
	if !cfg.NotificationsEnabled() {
		return nil
	}
	return asynq.NewClient(RedisClientOpt(cfg))
}
