package config

import "time"

// Config holds runtime settings for the MeetingMind CLI.
//
// Fields:
//   - ServerURL: base URL of the backend REST API.
//   - PollInterval: how often the live transcript is polled while recording.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: SQLite file holding the persisted bearer token.
//   - DownloadsDir: directory where downloaded PDFs are saved.
//   - LogFormat: "json" (zap) or "text" (slog).
type Config struct {
	ServerURL      string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	DatabasePath   string
	DownloadsDir   string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.PollInterval = 2 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "meetingmind.db"
	c.DownloadsDir = "downloads"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
