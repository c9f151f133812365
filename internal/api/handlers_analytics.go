// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package api

import (
	"net/http"

	"github.com/journeyscope/journeyscope/internal/analytics"
)

// AnalyticsOverview serves GET /api/v1/analytics/overview: platform
// totals, growth rates and daily activity trends for the window.
func (h *Handler) AnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	h.executeAnalytics(w, r, analytics.DomainOverview)
}

// AnalyticsUsers serves GET /api/v1/analytics/users: demographics,
// activity ranking, retention and the weekly-rate distribution.
func (h *Handler) AnalyticsUsers(w http.ResponseWriter, r *http.Request) {
	h.executeAnalytics(w, r, analytics.DomainUsers)
}

// AnalyticsJourneys serves GET /api/v1/analytics/journeys: journey
// totals, engagement, destinations, durations and top creators.
func (h *Handler) AnalyticsJourneys(w http.ResponseWriter, r *http.Request) {
	h.executeAnalytics(w, r, analytics.DomainJourneys)
}

// AnalyticsGeographic serves GET /api/v1/analytics/geographic: country
// and city distributions plus regional engagement.
func (h *Handler) AnalyticsGeographic(w http.ResponseWriter, r *http.Request) {
	h.executeAnalytics(w, r, analytics.DomainGeographic)
}

// AnalyticsSocial serves GET /api/v1/analytics/social: network
// overview, influence ranking, request funnel and the bounded graph.
func (h *Handler) AnalyticsSocial(w http.ResponseWriter, r *http.Request) {
	h.executeAnalytics(w, r, analytics.DomainSocial)
}
