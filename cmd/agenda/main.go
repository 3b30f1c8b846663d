// Agenda CLI — serve the agenda builder over HTTP or render agenda files.
//
// Usage:
//
//	agenda <command> [flags]
//
// Commands:
//
//	serve     Run the web form
//	render    Print an agenda file as a table, CSV, JSON or iCalendar
//	version   Print version information
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/internal/config"
	"github.com/Mr-Dark-debug/agenda/internal/database"
	"github.com/Mr-Dark-debug/agenda/internal/export"
	"github.com/Mr-Dark-debug/agenda/internal/logging"
	"github.com/Mr-Dark-debug/agenda/internal/web"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"go.uber.org/zap"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = cmdServe(os.Args[2:])
	case "render":
		err = cmdRender(os.Args[2:], os.Stdin, os.Stdout)
	case "version":
		fmt.Printf("Agenda v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Agenda — meeting agenda builder

Usage:
  agenda <command> [flags]

Commands:
  serve      Run the web form
  render     Print an agenda file as a table, CSV, JSON or iCalendar
  version    Print version information

Run 'agenda <command> --help' for details on each command.`)
}

// defaultMeeting turns the configured meeting defaults into a Meeting
// dated today.
func defaultMeeting(cfg config.Config) agenda.Meeting {
	start, _ := timeutil.ParseClock(cfg.Meeting.StartTime)
	return agenda.Meeting{
		Title:     cfg.Meeting.Title,
		Date:      timeutil.Today(time.Local),
		StartTime: start,
	}
}

// sweepInterval is how often idle web sessions are expired.
const sweepInterval = time.Minute

// cmdServe runs the web form until SIGINT or SIGTERM.
func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	addr := fs.String("addr", "", "Listen address (overrides config)")
	dbPath := fs.String("db", "", "Path to SQLite session store (overrides config)")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *dbPath != "" {
		cfg.DB.Path = *dbPath
	}
	listen := cfg.Server.Addr()
	if *addr != "" {
		listen = *addr
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	store, err := database.NewDBService(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening session store at %s: %w", cfg.DB.Path, err)
	}
	defer store.Close()

	srv, err := web.NewServer(web.Options{
		Store:      store,
		Defaults:   defaultMeeting(cfg),
		Logger:     logger,
		SessionTTL: cfg.Server.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go srv.RunSweeper(ctx, sweepInterval)

	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("agenda server listening",
			zap.String("addr", listen),
			zap.String("db", cfg.DB.Path),
			zap.Duration("session_ttl", cfg.Server.SessionTTL))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// cmdRender schedules an agenda file and writes it to out.
func cmdRender(args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	format := fs.String("format", "table", "Output format: table, csv, json, ics")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one agenda file (use - for stdin)")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	in := stdin
	if name := fs.Arg(0); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("opening agenda file: %w", err)
		}
		defer f.Close()
		in = f
	}

	meeting, items, err := agenda.ReadFile(in, defaultMeeting(cfg), time.Local)
	if err != nil {
		return fmt.Errorf("invalid agenda file: %w", err)
	}
	plan, err := agenda.NewPlan(meeting, items)
	if err != nil {
		return fmt.Errorf("scheduling: %w", err)
	}

	switch *format {
	case "table":
		err = writeTable(out, plan)
	case "csv":
		err = export.WriteCSV(out, plan.Rows)
	case "json":
		err = export.WriteJSON(out, plan)
	case "ics":
		err = export.WriteICS(out, plan, time.Now())
	default:
		return fmt.Errorf("unknown format: %s", *format)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", *format, err)
	}
	return nil
}

func writeTable(w io.Writer, plan agenda.Plan) error {
	if plan.IsExample {
		fmt.Fprintln(w, "No items yet. Showing an example agenda.")
		fmt.Fprintln(w)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(export.Columns, "\t"))
	for _, r := range plan.Rows {
		fmt.Fprintln(tw, strings.Join(export.Record(r), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, export.Summary(plan))
	return err
}
