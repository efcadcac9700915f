package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/manufacturer-store/internal/config"
	"github.com/phrazzld/manufacturer-store/internal/redact"
)

// DriverName is the database/sql driver used for every connection.
const DriverName = "pgx"

// Open creates the connection pool stores draw their connections from,
// applies the pool limits from cfg and verifies connectivity with a ping
// bounded by cfg.PingTimeout.
//
// The caller owns the returned pool and must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.URL == "" {
		return nil, errors.New("database URL is empty: check your configuration")
	}

	safeURL := redact.DatabaseURL(cfg.URL)

	db, err := sql.Open(DriverName, cfg.URL)
	if err != nil {
		logger.Error("failed to open database connection",
			slog.String("url", safeURL),
			slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database ping failed",
			slog.String("url", safeURL),
			slog.String("error", redact.Error(err)))
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("url", safeURL),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime))
	return db, nil
}
