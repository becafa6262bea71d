// Package config holds runtime settings for the SkillSync CLI.
package config

import "time"

// Config holds the client's runtime settings.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - DatabaseDSN: sqlite DSN for the local session store.
//   - PageSize: jobs shown per page in listings.
//   - HTTPTimeout: per-request timeout for backend calls.
type Config struct {
	APIBaseURL  string
	DatabaseDSN string
	PageSize    int
	HTTPTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.DatabaseDSN = "skillsync.db"
	c.PageSize = 5
	c.HTTPTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a -c/-config file is given), the environment (including a
// .env file when present), and finally command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
