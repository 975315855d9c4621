package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"leaguebot/pkg/tz"
)

const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"

	placeholderToken = "your_token_here"
)

type Config struct {
	Token          string
	StorageBackend string
	SettingsFile   string
	TeamsFile      string
	DatabaseURL    string
	RedisURL       string

	DefaultTimezone       string
	Locale                string
	LogLevel              slog.Level
	LocationFallbackDelay time.Duration
	PresenceInterval      time.Duration
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		Token:           os.Getenv("DISCORD_TOKEN"),
		StorageBackend:  getenv("STORAGE_BACKEND", BackendJSON),
		SettingsFile:    getenv("SETTINGS_FILE", "bot_settings.json"),
		TeamsFile:       getenv("TEAMS_FILE", "teams.json"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		DefaultTimezone: getenv("DEFAULT_TIMEZONE", tz.Default),
		Locale:          getenv("LOCALE", "en"),
	}

	var err error
	if cfg.LogLevel, err = parseLevel(getenv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.LocationFallbackDelay, err = parseDuration("LOCATION_FALLBACK_DELAY", "15s"); err != nil {
		return nil, err
	}
	if cfg.PresenceInterval, err = parseDuration("PRESENCE_INTERVAL", "25s"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	token := strings.TrimSpace(c.Token)
	if token == "" || token == placeholderToken {
		return fmt.Errorf("config: DISCORD_TOKEN is required")
	}

	switch c.StorageBackend {
	case BackendJSON:
		if c.SettingsFile == "" || c.TeamsFile == "" {
			return fmt.Errorf("config: SETTINGS_FILE and TEAMS_FILE cannot be empty")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required with the postgres backend")
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if !tz.IsKnown(c.DefaultTimezone) {
		return fmt.Errorf("config: DEFAULT_TIMEZONE %q is not in the timezone catalog", c.DefaultTimezone)
	}
	if c.LocationFallbackDelay <= 0 || c.PresenceInterval <= 0 {
		return fmt.Errorf("config: delays must be positive")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: invalid LOG_LEVEL %q", s)
	}
	return level, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := getenv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s (%q): %w", key, raw, err)
	}
	return d, nil
}
