package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.TTL())
	assert.Equal(t, 10*time.Minute, cfg.Sweep())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"port": 9090, "cache_ttl": "1m", "max_text_length": 5000}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Minute, cfg.TTL())
	assert.Equal(t, 5000, cfg.MaxTextLength)
	// Untouched fields keep defaults.
	assert.Equal(t, 10*time.Minute, cfg.Sweep())
	assert.Equal(t, 10, cfg.MinTextLength)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.TTL())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Port too small", func(c *Config) { c.Port = 0 }},
		{"Port too large", func(c *Config) { c.Port = 70000 }},
		{"Bad TTL", func(c *Config) { c.CacheTTL = "five minutes" }},
		{"Bad sweep interval", func(c *Config) { c.SweepInterval = "" }},
		{"Zero min length", func(c *Config) { c.MinTextLength = 0 }},
		{"Max below min", func(c *Config) { c.MaxTextLength = 5; c.MinTextLength = 10 }},
		{"Vocabulary file missing", func(c *Config) { c.VocabularyPath = "/does/not/exist.json" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
