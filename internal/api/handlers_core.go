// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package api

import (
	"net/http"

	"github.com/journeyscope/journeyscope/internal/models"
)

// Users serves GET /api/v1/users: the thin id/display-name list the
// dashboard uses to populate filter pickers.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.ListUsers(r.Context(), h.cfg.API.MaxPageSize)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list users", err)
		return
	}
	if users == nil {
		users = []models.UserSummary{}
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(users))
}

// Destinations serves GET /api/v1/destinations: the distinct journey
// destinations, for filter pickers and map bootstrapping.
func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.db.ListDestinations(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list destinations", err)
		return
	}
	if destinations == nil {
		destinations = []string{}
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(destinations))
}
