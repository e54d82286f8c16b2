package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/sworddrill/internal/app"
	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	adapter := progress.NewAdapter(st, nil, appLogger())
	return app.Run(app.Options{Adapter: adapter})
}

// openStore resolves the database path and opens the SQLite store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// appLogger writes debug logs to stderr when SWORDDRILL_DEBUG is set.
// Returning nil makes the adapter discard logs, which keeps the TUI clean.
func appLogger() *slog.Logger {
	if os.Getenv("SWORDDRILL_DEBUG") == "" {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
