// Command healthcheck exits non-zero when the bot cannot start: no token, or
// missing data files with the json backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := check(os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, "Health check failed:", err)
		os.Exit(1)
	}
	fmt.Println("Health check passed")
}

func check(getenv func(string) string) error {
	if getenv("DISCORD_TOKEN") == "" {
		return fmt.Errorf("DISCORD_TOKEN is not set")
	}
	if backend := getenv("STORAGE_BACKEND"); backend != "" && backend != "json" {
		return nil
	}
	for _, f := range []struct{ key, fallback string }{
		{"SETTINGS_FILE", "bot_settings.json"},
		{"TEAMS_FILE", "teams.json"},
	} {
		path := getenv(f.key)
		if path == "" {
			path = f.fallback
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("data file %s: %w", path, err)
		}
	}
	return nil
}
