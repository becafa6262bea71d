package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envAPIBaseURL  = "SKILLSYNC_API_URL"
	envDatabaseDSN = "SKILLSYNC_DB"
	envPageSize    = "SKILLSYNC_PAGE_SIZE"
	envHTTPTimeout = "SKILLSYNC_HTTP_TIMEOUT_SECONDS"
)

// parseEnv overlays cfg from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win
// over .env entries (godotenv never overrides existing values).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()
	applyEnv(cfg)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv(envPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv(envHTTPTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeout = time.Duration(n) * time.Second
		}
	}
}
