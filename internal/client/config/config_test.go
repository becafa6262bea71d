package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000/api", c.APIBaseURL)
	assert.Equal(t, "skillsync.db", c.DatabaseDSN)
	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, 15*time.Second, c.HTTPTimeout)
}

func TestApplyJSONFile_SparseOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"https://api.example.com","page_size":10}`), 0o600))

	var c Config
	c.LoadDefaults()
	applyJSONFile(&c, path)

	assert.Equal(t, "https://api.example.com", c.APIBaseURL)
	assert.Equal(t, 10, c.PageSize)
	// unnamed fields keep their defaults
	assert.Equal(t, "skillsync.db", c.DatabaseDSN)
	assert.Equal(t, 15*time.Second, c.HTTPTimeout)
}

func TestApplyJSONFile_BrokenFilePanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o600))

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { applyJSONFile(&c, path) })
}

func TestApplyEnv_Override(t *testing.T) {
	t.Setenv(envAPIBaseURL, "https://env.example.com")
	t.Setenv(envPageSize, "20")
	t.Setenv(envHTTPTimeout, "60")

	var c Config
	c.LoadDefaults()
	applyEnv(&c)

	assert.Equal(t, "https://env.example.com", c.APIBaseURL)
	assert.Equal(t, 20, c.PageSize)
	assert.Equal(t, 60*time.Second, c.HTTPTimeout)
	assert.Equal(t, "skillsync.db", c.DatabaseDSN)
}

func TestApplyEnv_BadNumbersIgnored(t *testing.T) {
	t.Setenv(envPageSize, "not-a-number")
	t.Setenv(envHTTPTimeout, "-5")

	var c Config
	c.LoadDefaults()
	applyEnv(&c)

	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, 15*time.Second, c.HTTPTimeout)
}
