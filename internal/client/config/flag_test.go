package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"skillsync", "-a", "https://flags.example.com", "-s", "7", "-t", "30"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://flags.example.com", c.APIBaseURL)
	assert.Equal(t, 7, c.PageSize)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"skillsync", "-c", "conf.json", "-d", "other.db", "-unrelated", "x"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	// -c belongs to the JSON loader, -unrelated to nobody; only -d applies
	assert.Equal(t, "other.db", c.DatabaseDSN)
	assert.Equal(t, "http://127.0.0.1:8000/api", c.APIBaseURL)
}
