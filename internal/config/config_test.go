package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "abc")
	for _, k := range []string{"STORAGE_BACKEND", "SETTINGS_FILE", "TEAMS_FILE", "DATABASE_URL",
		"REDIS_URL", "DEFAULT_TIMEZONE", "LOCALE", "LOG_LEVEL", "LOCATION_FALLBACK_DELAY", "PRESENCE_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.StorageBackend)
	assert.Equal(t, "bot_settings.json", cfg.SettingsFile)
	assert.Equal(t, "teams.json", cfg.TeamsFile)
	assert.Equal(t, "UTC", cfg.DefaultTimezone)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.LocationFallbackDelay)
	assert.Equal(t, 25*time.Second, cfg.PresenceInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "abc")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://db:5432/league?sslmode=disable")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Berlin")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOCATION_FALLBACK_DELAY", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, "Europe/Berlin", cfg.DefaultTimezone)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.LocationFallbackDelay)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Token:                 "abc",
			StorageBackend:        BackendJSON,
			SettingsFile:          "s.json",
			TeamsFile:             "t.json",
			DefaultTimezone:       "UTC",
			LocationFallbackDelay: time.Second,
			PresenceInterval:      time.Second,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing token", func(c *Config) { c.Token = " " }},
		{"placeholder token", func(c *Config) { c.Token = "your_token_here" }},
		{"unknown backend", func(c *Config) { c.StorageBackend = "sqlite" }},
		{"postgres without url", func(c *Config) { c.StorageBackend = BackendPostgres }},
		{"postgres url without host", func(c *Config) {
			c.StorageBackend = BackendPostgres
			c.DatabaseURL = "league"
		}},
		{"timezone outside catalog", func(c *Config) { c.DefaultTimezone = "Mars/Olympus" }},
		{"zero delay", func(c *Config) { c.LocationFallbackDelay = 0 }},
	}

	cfg := valid()
	require.NoError(t, cfg.validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
		})
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := parseLevel("loud")
	assert.Error(t, err)
}
