package main

import (
	"log"

	"mergington-activities/src/config"
	"mergington-activities/src/database"
	"mergington-activities/src/jobs"
	"mergington-activities/src/logger"
	"mergington-activities/src/services/notifications"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zl.Sync()

	if !cfg.NotificationsEnabled() {
		zl.Fatal("REDIS_URI is required to run the worker")
	}

	srv := asynq.NewServer(database.RedisClientOpt(cfg), asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
		Queues: map[string]int{
			notifications.QueueName(): 1,
		},
		Logger: zl.Sugar(),
	})

	mux := asynq.NewServeMux()
	jobs.RegisterHandlers(mux, zl)

	zl.Info("worker started", zap.Int("concurrency", cfg.WorkerConcurrency))
	if err := srv.Run(mux); err != nil {
		zl.Fatal("worker stopped", zap.Error(err))
	}
}
