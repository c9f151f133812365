// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package api provides the HTTP surface of the dashboard: the
// analytics endpoints, the supporting list endpoints, health probes
// and the Chi router that wires them together.
package api

import (
	"time"

	"github.com/journeyscope/journeyscope/internal/analytics"
	"github.com/journeyscope/journeyscope/internal/cache"
	"github.com/journeyscope/journeyscope/internal/config"
	"github.com/journeyscope/journeyscope/internal/database"
)

// Version is the build version, overridden at link time.
var Version = "dev"

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	db        *database.DB
	agg       *analytics.Aggregator
	cache     *cache.Cache
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates a handler with all dependencies injected. The
// cache may be nil, which disables response caching entirely.
func NewHandler(db *database.DB, agg *analytics.Aggregator, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		agg:       agg,
		cache:     c,
		cfg:       cfg,
		startTime: time.Now(),
	}
}
