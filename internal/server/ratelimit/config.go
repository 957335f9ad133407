package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting parameters.
type Config struct {
	Enabled         bool
	Limit           int           // Requests per window
	Window          time.Duration // Refill window
	Burst           int           // Bucket capacity
	CleanupInterval time.Duration // Idle-bucket eviction period
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	limit := getEnvInt("RATE_LIMIT_LIMIT", 60)
	burst := getEnvInt("RATE_LIMIT_BURST", 10)
	if burst <= 0 {
		burst = limit
	}

	return &Config{
		Enabled:         true,
		Limit:           limit,
		Window:          getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		Burst:           burst,
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
