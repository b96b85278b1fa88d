package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with MEETINGMIND_* environment variables.
// A .env file in the working directory is loaded first when present;
// real environment variables win over .env entries (godotenv semantics).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("MEETINGMIND_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("MEETINGMIND_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("MEETINGMIND_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("MEETINGMIND_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("MEETINGMIND_DOWNLOADS_DIR"); v != "" {
		cfg.DownloadsDir = v
	}
	if v := os.Getenv("MEETINGMIND_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
