package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/httpapi"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "taskd",
		Short: "A task-tracking CRUD service",
		Long: `taskd is an HTTP service for tracking tasks.

It exposes create, list, fetch, update and delete operations on task
records over a relational store.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Server Configuration:
    TASKD_ADDR                 Listen address (default: :8080)
    TASKD_REQUEST_TIMEOUT      Per-request timeout (default: 10s)
    TASKD_SHUTDOWN_TIMEOUT     Graceful shutdown timeout (default: 10s)

  Database Configuration:
    TASKD_DB_DRIVER            Database driver: sqlite or postgres (default: sqlite)
    TASKD_DB_PATH              SQLite database file (default: ~/.taskd/tasks.db)
    TASKD_DB_DSN               Postgres DSN, required when driver is postgres`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.AddCommand(newServeCommand())

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func newServeCommand() *cobra.Command {
	var (
		addr     string
		dbDriver string
		dbPath   string
		dbDSN    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the task-tracking HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().Load()
			if err != nil {
				return err
			}

			// Flags override environment and defaults
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if dbDriver != "" {
				cfg.Database.Driver = config.Driver(dbDriver)
			}
			if dbPath != "" {
				cfg.Database.Path = dbPath
			}
			if dbDSN != "" {
				cfg.Database.DSN = dbDSN
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runServer(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", "", "Listen address (overrides TASKD_ADDR)")
	flags.StringVar(&dbDriver, "db-driver", "", "Database driver: sqlite or postgres (overrides TASKD_DB_DRIVER)")
	flags.StringVar(&dbPath, "db-path", "", "SQLite database file (overrides TASKD_DB_PATH)")
	flags.StringVar(&dbDSN, "db-dsn", "", "Postgres DSN (overrides TASKD_DB_DSN)")

	return cmd
}

func runServer(cfg *config.Config) error {
	logger := logging.New(os.Stdout)

	repo, err := NewRepositoryFactory(cfg.Database).CreateRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	svc := services.NewTaskService(repo)
	handler := httpapi.NewServer(svc, logger, cfg.Server.RequestTimeout)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	// Root context cancelled on SIGINT/SIGTERM
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", map[string]any{
			"addr":   cfg.Server.Addr,
			"driver": string(cfg.Database.Driver),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-rootCtx.Done():
	}

	logger.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("shutdown complete", nil)
	return nil
}
