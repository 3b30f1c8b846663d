// Agenda TUI — build a meeting agenda interactively in the terminal.
//
// Usage:
//
//	agenda-tui [flags]
//
// Flags:
//
//	--config      Path to a YAML config file (default: $AGENDA_CONFIG_PATH)
//	--db          SQLite session store (default: in memory, no database)
//	--export-dir  Directory for CSV and iCalendar exports (default: .)
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/internal/config"
	"github.com/Mr-Dark-debug/agenda/internal/database"
	"github.com/Mr-Dark-debug/agenda/internal/logging"
	"github.com/Mr-Dark-debug/agenda/internal/tui"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to YAML config file")
	dbPath := flag.String("db", "", "Path to SQLite session store (overrides config)")
	exportDir := flag.String("export-dir", ".", "Directory for exported files")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *dbPath != "" {
		cfg.DB.Path = *dbPath
	}

	logger, err := logging.NewFile(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logger.Sync()

	list, closeList, err := openList(cfg.DB.Path, logger)
	if err != nil {
		return err
	}
	defer closeList()

	start, _ := timeutil.ParseClock(cfg.Meeting.StartTime)
	model := tui.NewModel(tui.Options{
		List: list,
		Meeting: agenda.Meeting{
			Title:     cfg.Meeting.Title,
			Date:      timeutil.Today(time.Local),
			StartTime: start,
		},
		ExportDir: *exportDir,
		Logger:    logger,
	})

	logger.Info("agenda-tui started",
		zap.String("db", cfg.DB.Path),
		zap.String("export_dir", *exportDir))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// openList returns the agenda list for this run. Without a database
// file the list lives in memory; with one, the run gets its own session
// that is deleted again on close.
func openList(path string, logger *zap.Logger) (agenda.List, func(), error) {
	if path == "" || path == ":memory:" {
		return agenda.NewSession(), func() {}, nil
	}

	store, err := database.NewDBService(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening session store at %s: %w", path, err)
	}

	sessionID := uuid.NewString()
	list, err := database.OpenSession(store, sessionID)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	return list, func() {
		if err := store.DeleteSession(sessionID); err != nil {
			logger.Warn("deleting session failed", zap.String("session", sessionID), zap.Error(err))
		}
		if err := store.Close(); err != nil {
			logger.Warn("closing session store failed", zap.Error(err))
		}
	}, nil
}
