// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package api

import (
	"net/http"
	"time"

	"github.com/journeyscope/journeyscope/internal/models"
)

// HealthLive serves GET /api/v1/health/live. It reports only that the
// process is up; orchestrators use it for liveness probes.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(models.HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}))
}

// HealthReady serves GET /api/v1/health/ready. Readiness requires a
// reachable analytics store.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:    "ok",
		Database:  "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.db.Ping(r.Context()); err != nil {
		status.Status = "degraded"
		status.Database = "unavailable"
		respondJSON(w, http.StatusServiceUnavailable, models.NewErrorResponse("analytics store not ready"))
		return
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(status))
}

// Health serves GET /api/v1/health with version and uptime detail.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:    "ok",
		Version:   Version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Database:  "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.db.Ping(r.Context()); err != nil {
		status.Status = "degraded"
		status.Database = "unavailable"
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(status))
}
