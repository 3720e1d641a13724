package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the cookbook CLI.
//
// Fields:
//   - APIBaseURL: base URL of the recipe API, without the /api suffix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: sqlite file holding the session and navigation hints.
//   - MaxParallelFetches: concurrent recipe fetches when resolving favorites.
//   - RequestsPerSecond: outgoing request limit, 0 disables limiting.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL         string        `split_words:"true"`
	RequestTimeout     time.Duration `split_words:"true"`
	DatabasePath       string        `split_words:"true"`
	MaxParallelFetches int           `split_words:"true"`
	RequestsPerSecond  float64       `split_words:"true"`
	LogLevel           string        `split_words:"true"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "cookbook.db"
	c.MaxParallelFetches = 8
	c.RequestsPerSecond = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
