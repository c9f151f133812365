// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/journeyscope/journeyscope/internal/config"
	"github.com/journeyscope/journeyscope/internal/metrics"
	"github.com/journeyscope/journeyscope/internal/middleware"
)

// Router assembles the HTTP routing tree around a Handler.
type Router struct {
	handler *Handler
	cfg     *config.Config
}

// NewRouter creates a router for the given handler.
func NewRouter(h *Handler, cfg *config.Config) *Router {
	return &Router{handler: h, cfg: cfg}
}

// Setup configures all HTTP routes using the Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health probes skip rate limiting so orchestrators can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if !router.cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(
				router.cfg.Security.RateLimitReqs,
				router.cfg.Security.RateLimitWindow,
			))
		}
		r.Use(middleware.PrometheusMetrics)

		r.Get("/users", router.handler.Users)
		r.Get("/destinations", router.handler.Destinations)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", router.handler.AnalyticsOverview)
			r.Get("/users", router.handler.AnalyticsUsers)
			r.Get("/journeys", router.handler.AnalyticsJourneys)
			r.Get("/geographic", router.handler.AnalyticsGeographic)
			r.Get("/social", router.handler.AnalyticsSocial)
		})
	})

	r.Handle("/metrics", metrics.Handler())

	return r
}
