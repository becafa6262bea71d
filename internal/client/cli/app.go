// Package cli implements the interactive SkillSync client: a REPL whose
// commands correspond to the pages of the web app, gated by the route guard.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/skillsync/skillsync/internal/client/api"
	"github.com/skillsync/skillsync/internal/client/config"
	"github.com/skillsync/skillsync/internal/client/services"
	"github.com/skillsync/skillsync/internal/client/storage"
	"github.com/skillsync/skillsync/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	client  api.Client
	session services.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(os.Stderr, slog.LevelWarn)

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewRESTClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, log)
	session := services.NewSessionService(apiClient, db, log)
	apiClient.TokenSource = session.Token

	return &App{
		config:  cfg,
		client:  apiClient,
		session: session,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the session from the previous run and starts the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Bootstrap(ctx); err != nil {
		printlnFn("Could not restore session:", err.Error())
	}
	a.Root(ctx)
}
