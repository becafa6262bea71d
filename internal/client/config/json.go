package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/skillsync/skillsync/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds. Zero values are treated as "not set" so a sparse
// file only overrides what it names.
type jsonConfig struct {
	APIBaseURL      string `json:"api_base_url"`
	DatabaseDSN     string `json:"database_dsn"`
	PageSize        int    `json:"page_size"`
	HTTPTimeoutSecs int    `json:"http_timeout_seconds"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag means no JSON is loaded. Read or unmarshal
// errors panic; the entrypoint treats a broken config file as fatal.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}
	applyJSONFile(cfg, path)
}

func applyJSONFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.HTTPTimeoutSecs > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeoutSecs) * time.Second
	}
}
