// Package config loads runtime settings for the dropspot client.
// Precedence: defaults, then an optional JSON file (-c/-config), then
// command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the drop service.
//   - DatabasePath: path of the local SQLite database (persisted credential).
//   - LogPath: file structured logs are written to (the terminal belongs to
//     the UI).
//   - RequestTimeout: per-request deadline applied by the UI when it invokes
//     store actions.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	LogPath        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.DatabasePath = "dropspot.db"
	c.LogPath = "dropspot.log"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
