package main

import (
	"log"
	"os"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr string

	// OverdueScanSchedule is a cron spec; defaults to a daily run
	// shortly after midnight so due dates are evaluated fresh.
	OverdueScanSchedule string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:           getEnv("REDIS_HOST", "localhost:6379"),
		OverdueScanSchedule: getEnv("OVERDUE_SCAN_SCHEDULE", "5 0 * * *"),
	}

	log.Printf("[Config] Redis: %s, overdue scan: %q",
		cfg.RedisAddr, cfg.OverdueScanSchedule)

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
