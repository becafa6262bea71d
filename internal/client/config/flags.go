package config

import (
	"flag"
	"os"
	"time"

	"github.com/skillsync/skillsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   sqlite DSN for the local session store
//	-s int      jobs per page in listings
//	-t int      HTTP timeout in seconds
//
// os.Args is filtered to just these flags via flagx.FilterArgs so the
// config-file flags handled elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN for the session store")
	pageSize := fs.Int("s", cfg.PageSize, "jobs per page")
	timeoutSecs := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *pageSize > 0 {
		cfg.PageSize = *pageSize
	}
	if *timeoutSecs > 0 {
		cfg.HTTPTimeout = time.Duration(*timeoutSecs) * time.Second
	}
}
