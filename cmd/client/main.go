package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "modernc.org/sqlite"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/config"
	"github.com/aakcay5656/dropspot/internal/client/credstore"
	"github.com/aakcay5656/dropspot/internal/client/stores"
	"github.com/aakcay5656/dropspot/internal/client/tui"
	"github.com/aakcay5656/dropspot/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dropspot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	ctx := context.Background()

	// Logs go to a file; the terminal belongs to the UI.
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(logFile, nil)))

	db, err := credstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open local database: %w", err)
	}
	defer db.Close()

	creds := credstore.NewSQLiteRepository(db)
	client := api.NewHTTPClient(cfg.ServerBaseURL, creds, logger)
	defer client.Close()

	session := stores.NewSessionStore(client, creds, logger)
	client.OnUnauthorized(session.Invalidate)
	drops := stores.NewDropStore(client, logger)
	admin := stores.NewAdminStore(client, logger)

	if err := session.Restore(ctx); err != nil {
		logger.Warn(ctx, "session restore failed", "error", err)
	}

	model := tui.New(tui.Stores{Session: session, Drops: drops, Admin: admin}, cfg.RequestTimeout)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
