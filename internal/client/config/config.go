package config

import "time"

// Config holds runtime settings for the PayTrack CLI.
//
// Fields:
//   - APIBaseURL: base URL of the income-tracking REST API.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabaseDSN: path of the local SQLite session database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "paytrack.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
