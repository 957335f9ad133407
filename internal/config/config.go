// Package config provides configuration loading and validation for the
// résumé parser service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the service configuration. It can be loaded from a JSON
// file, and individual values can be overridden via environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Cache
	CacheTTL      string `json:"cache_ttl,omitempty"`      // Entry time-to-live, Go duration string
	SweepInterval string `json:"sweep_interval,omitempty"` // Period of the stale-entry sweep

	// Input bounds
	MinTextLength int `json:"min_text_length,omitempty"` // Reject shorter submissions
	MaxTextLength int `json:"max_text_length,omitempty"` // Reject longer submissions

	// Extraction
	VocabularyPath string `json:"vocabulary_path,omitempty"` // Optional keyword vocabulary override file

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or pretty
}

// Default returns the configuration used when no file or env overrides are
// present.
func Default() *Config {
	return &Config{
		Port:          8080,
		CacheTTL:      "5m",
		SweepInterval: "10m",
		MinTextLength: 10,
		MaxTextLength: 100000,
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// Load reads configuration from an optional JSON file, then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config values from environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		c.CacheTTL = v
	}
	if v := os.Getenv("CACHE_SWEEP_INTERVAL"); v != "" {
		c.SweepInterval = v
	}
	if v := os.Getenv("MIN_TEXT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MinTextLength = n
		}
	}
	if v := os.Getenv("MAX_TEXT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTextLength = n
		}
	}
	if v := os.Getenv("VOCABULARY_PATH"); v != "" {
		c.VocabularyPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if _, err := time.ParseDuration(c.CacheTTL); err != nil {
		return fmt.Errorf("config error: 'cache_ttl' is not a valid duration: %w", err)
	}
	if _, err := time.ParseDuration(c.SweepInterval); err != nil {
		return fmt.Errorf("config error: 'sweep_interval' is not a valid duration: %w", err)
	}
	if c.MinTextLength < 1 {
		return fmt.Errorf("config error: 'min_text_length' must be positive")
	}
	if c.MaxTextLength <= c.MinTextLength {
		return fmt.Errorf("config error: 'max_text_length' must exceed 'min_text_length'")
	}
	if c.VocabularyPath != "" {
		if _, err := os.Stat(c.VocabularyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyPath)
		}
	}
	return nil
}

// TTL returns the parsed cache TTL. Call Validate first; an unparsable value
// falls back to the default here.
func (c *Config) TTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// Sweep returns the parsed sweep interval, with the same fallback behavior
// as TTL.
func (c *Config) Sweep() time.Duration {
	d, err := time.ParseDuration(c.SweepInterval)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}
