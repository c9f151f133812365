// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package api

import (
	"net/http"

	"github.com/journeyscope/journeyscope/internal/analytics"
	"github.com/journeyscope/journeyscope/internal/cache"
	"github.com/journeyscope/journeyscope/internal/metrics"
	"github.com/journeyscope/journeyscope/internal/models"
	"github.com/journeyscope/journeyscope/internal/validation"
	"github.com/journeyscope/journeyscope/internal/window"
)

// analyticsRequest carries the validated query parameters shared by
// every analytics endpoint.
type analyticsRequest struct {
	Period    string `validate:"omitempty,oneof=today last_week last_month last_year all_time custom"`
	StartDate string
	EndDate   string
	Limit     int `validate:"min=1"`
}

// executeAnalytics is the shared flow behind the five analytics
// endpoints: parse and validate parameters, resolve the window, serve
// a bare all-time request from the response cache when possible, and
// otherwise compute live and cache the assembled result.
//
// Invalid ranges fail before any store query runs. Every request with
// a non-empty window takes the live path unconditionally.
func (h *Handler) executeAnalytics(w http.ResponseWriter, r *http.Request, domain analytics.Domain) {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "Analytics store not available", nil)
		return
	}

	req := analyticsRequest{
		Period:    r.URL.Query().Get("period"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		Limit:     getIntParam(r, "limit", h.cfg.API.DefaultPageSize),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Message(), nil)
		return
	}
	if req.Limit > h.cfg.API.MaxPageSize {
		req.Limit = h.cfg.API.MaxPageSize
	}

	// Explicit dates imply a custom range even without period=custom.
	period := window.Period(req.Period)
	if period == "" && (req.StartDate != "" || req.EndDate != "") {
		period = window.PeriodCustom
	}

	// Both malformed dates and inverted ranges are client errors and
	// fail before any store query runs.
	win, err := window.Resolve(period, h.agg.Now(), req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// Only a bare all-time request may reuse a cached response.
	cacheable := win.IsAllTime() && h.cache != nil
	cacheKey := ""
	if cacheable {
		cacheKey = cache.GenerateKey("Analytics"+string(domain), struct {
			Window string
			Limit  int
		}{win.String(), req.Limit})

		if cached, found := h.cache.Get(cacheKey); found {
			metrics.RecordComputation(string(domain), true)
			respondJSON(w, http.StatusOK, models.NewCachedResponse(cached))
			return
		}
	}

	result, err := h.agg.Compute(r.Context(), domain, win, req.Limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute analytics", err)
		return
	}
	metrics.RecordComputation(string(domain), result.FromCache)

	if cacheable {
		h.cache.SetWithTTL(cacheKey, result.Data, h.cfg.API.CacheTTL)
	}

	if result.FromCache {
		respondJSON(w, http.StatusOK, models.NewCachedResponse(result.Data))
		return
	}
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(result.Data))
}
