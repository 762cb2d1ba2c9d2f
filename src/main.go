package main

import (
	"fmt"
	"log"
	"net/url"

	_ "mergington-activities/docs"
	"mergington-activities/src/config"
	"mergington-activities/src/controllers"
	"mergington-activities/src/database"
	"mergington-activities/src/logger"
	"mergington-activities/src/metrics"
	"mergington-activities/src/routes"
	"mergington-activities/src/seeder"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/services/notifications"

	"go.uber.org/zap"
)

// @title        Mergington High School Activities API
// @version      1.0
// @description  Sign students up for and remove them from extracurricular activities.
// @BasePath     /
func main() {
	cfg, loadedDotEnv, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zl.Sync()
	if !loadedDotEnv {
		zl.Warn("no .env file found, using environment only")
	}

	collector := metrics.New()

	// โหลดกิจกรรมตั้งต้น
	registry, err := activities.NewRegistry(seeder.SampleActivities(),
		activities.WithRosterObserver(collector.ObserveRoster))
	if err != nil {
		zl.Fatal("invalid seed catalog", zap.Error(err))
	}

	var notifier notifications.Notifier = notifications.NopNotifier{}
	redisClient := database.NewRedis(cfg)
	if asynqClient := database.NewAsynqClient(cfg); asynqClient != nil {
		defer asynqClient.Close()
		defer redisClient.Close()
		notifier = notifications.NewAsynqNotifier(asynqClient)
		zl.Info("notifications enabled", zap.String("redis", cfg.RedisURI))
	} else {
		zl.Warn("REDIS_URI not set, notifications disabled")
	}

	app := routes.NewApp(routes.Handlers{
		Activities: controllers.NewActivityController(registry, notifier, collector, zl),
		Health:     controllers.NewHealthController(redisClient, zl),
		Metrics:    collector,
		StaticDir:  cfg.StaticDir,
	}, cfg.AllowedOrigins, zl)

	zl.Info("server is running", zap.String("port", cfg.AppURI))
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
