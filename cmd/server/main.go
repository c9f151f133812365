// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package main is the entry point for the Journeyscope server.
//
// Journeyscope is a self-hosted analytics dashboard for travel-journal
// platforms. It computes time-windowed growth, retention, engagement,
// geographic and social-network metrics over the user, journey,
// comment and friendship streams, and serves them as JSON over HTTP.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered loading via Koanf v2 (defaults, YAML, env)
//  2. Database: embedded DuckDB analytics store
//  3. Analytics: the window-scoped metrics aggregator
//  4. HTTP Server: Chi-routed REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (see envTransformFunc in internal/config)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
// Development with an ephemeral store and demo data:
//
//	export DUCKDB_PATH=:memory:
//	export SEED_MOCK_DATA=true
//	./journeyscope
//
// Production against a persisted store:
//
//	export DUCKDB_PATH=/data/journeyscope.duckdb
//	export LOG_FORMAT=json
//	./journeyscope
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests to complete
// (10s timeout), then checkpoints and closes the database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/journeyscope/journeyscope/internal/analytics"
	"github.com/journeyscope/journeyscope/internal/api"
	"github.com/journeyscope/journeyscope/internal/cache"
	"github.com/journeyscope/journeyscope/internal/config"
	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", api.Version).Msg("Starting Journeyscope")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if cfg.Database.SeedMockData {
		if err := db.SeedMockData(context.Background()); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed mock data")
		}
	}

	agg := analytics.New(db)
	responseCache := cache.New(cfg.API.CacheTTL)

	handler := api.NewHandler(db, agg, responseCache, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logging.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Journeyscope stopped")
}
