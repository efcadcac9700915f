// Package main implements the migrate command, which applies the embedded
// manufacturers schema migrations to the configured database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/manufacturer-store/internal/config"
	"github.com/phrazzld/manufacturer-store/internal/platform/logger"
	"github.com/phrazzld/manufacturer-store/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// gooseCommands are the goose commands exposed as subcommands that take no arguments.
var gooseCommands = []struct {
	name  string
	short string
}{
	{"up", "Apply all pending migrations"},
	{"down", "Roll back the most recent migration"},
	{"status", "Show the status of every migration"},
	{"version", "Print the current schema version"},
	{"redo", "Roll back and re-apply the most recent migration"},
	{"reset", "Roll back all migrations"},
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the manufacturers database schema",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level regardless of configuration")

	for _, gc := range gooseCommands {
		command := gc.name
		rootCmd.AddCommand(&cobra.Command{
			Use:   command,
			Short: gc.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigration(cmd.Context(), command, verbose)
			},
		})
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "up-to VERSION",
		Short: "Apply migrations up to and including VERSION",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cmd.Context(), "up-to", verbose, args[0])
		},
	})

	return rootCmd
}

// runMigration loads configuration, opens the pool and runs one goose command.
func runMigration(ctx context.Context, command string, verbose bool, args ...string) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	base, err := logger.Setup(logger.LoggerConfig{Level: level})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	// A correlation ID ties together all log lines of one run.
	log := base.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	log.Info("starting migration operation", "args", args)

	db, err := postgres.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", "error", err)
		}
	}()

	err = postgres.Migrate(ctx, db, command, log, args...)
	log.Info("migration operation completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"success", err == nil)
	if err != nil {
		log.Error("migration failed", "error", err)
		return err
	}

	return nil
}
