// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the monitor service.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	LogLevel    string

	MonitorIntervalHours   int // How often the daily monitoring cron fires
	StatusCheckConcurrency int // Parallel posting-status HTTP checks
	StatusCheckTimeoutSec  int // Per-request timeout for status checks
}

// Load reads .env (when present) and the environment, returning a
// validated Config.
func Load() (*Config, error) {
	// Missing .env is fine — containers inject real env vars.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("MONITOR_PORT")
	if port == "" {
		port = "8082"
	}

	interval, err := positiveIntEnv("MONITOR_INTERVAL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	concurrency, err := positiveIntEnv("STATUS_CHECK_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}
	timeoutSec, err := positiveIntEnv("STATUS_CHECK_TIMEOUT_SEC", 15)
	if err != nil {
		return nil, err
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Port:                   port,
		DatabaseURL:            dbURL,
		RedisURL:               redisURL,
		LogLevel:               logLevel,
		MonitorIntervalHours:   interval,
		StatusCheckConcurrency: concurrency,
		StatusCheckTimeoutSec:  timeoutSec,
	}, nil
}

func positiveIntEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, s)
	}
	return v, nil
}
