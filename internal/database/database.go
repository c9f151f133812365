// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package database provides read access to the embedded DuckDB
// analytics store: the four entity streams (users, journeys, comments,
// friendships), the optional friend-request stream and the legacy
// pre-aggregated summary table. All analytics queries are parameterized
// and window-scoped through a shared filter clause builder.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/journeyscope/journeyscope/internal/config"
	"github.com/journeyscope/journeyscope/internal/logging"
)

// ErrStoreUnavailable wraps store connectivity failures so the API
// layer can distinguish them from bad requests.
var ErrStoreUnavailable = errors.New("analytics store unavailable")

// defaultQueryTimeout bounds queries whose caller context carries no
// deadline of its own.
const defaultQueryTimeout = 30 * time.Second

// DB wraps the DuckDB connection and provides the analytics queries.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens (or creates) the database and initializes the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure the parent directory exists for file-backed databases.
	if cfg.Path != ":memory:" {
		if dbDir := filepath.Dir(cfg.Path); dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	// Disable extension auto-install/auto-load to prevent hangs in
	// restricted network environments.
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}

	db.configureConnectionPool()

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Int("threads", numThreads).
		Str("max_memory", cfg.MaxMemory).
		Msg("Database initialized")

	return db, nil
}

// configureConnectionPool applies pool sizing suitable for an embedded
// database serving read-heavy analytics traffic.
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU() * 2)
	db.conn.SetMaxIdleConns(runtime.NumCPU())
	db.conn.SetConnMaxLifetime(0) // embedded connections do not go stale
}

// initialize creates tables and indexes if they do not exist.
func (db *DB) initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()

	if err := db.createTables(ctx); err != nil {
		return err
	}
	return db.createIndexes(ctx)
}

// Conn returns the underlying SQL connection, used by tests.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping verifies store connectivity for the readiness probe.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Close flushes and closes the database.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	// Best-effort checkpoint so the WAL is folded into the data file.
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		logging.Warn().Err(err).Msg("Checkpoint on close failed")
	}
	return db.conn.Close()
}

// ensureContext returns a context carrying a deadline, applying the
// default query timeout when the caller supplied none.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close database connection")
	}
}
