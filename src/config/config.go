package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the API and the worker read from the environment.
type Config struct {
	AppURI         string   `env:"APP_URI" envDefault:"8000"`
	StaticDir      string   `env:"STATIC_DIR" envDefault:"./static"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// RedisURI ว่างไว้ = ปิดระบบแจ้งเตือน (asynq)
	RedisURI          string `env:"REDIS_URI"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	WorkerConcurrency int    `env:"WORKER_CONCURRENCY" envDefault:"5"`
}

// NotificationsEnabled reports whether a Redis broker was configured.
func (c Config) NotificationsEnabled() bool {
	return c.RedisURI != ""
}

// Load reads the given .env files (".env" when none are given) and then
// parses the process environment into a Config. Missing .env files are
// not an error; the second return value says whether one was loaded.
func Load(files ...string) (Config, bool, error) {
	loaded := true
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, fmt.Errorf("load .env: %w", err)
		}
		loaded = false
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, loaded, fmt.Errorf("parse env: %w", err)
	}
	if cfg.WorkerConcurrency <= 0 {
		return Config{}, loaded, fmt.Errorf("WORKER_CONCURRENCY must be positive, got %d", cfg.WorkerConcurrency)
	}
	return cfg, loaded, nil
}
