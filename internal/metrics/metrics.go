// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package metrics exposes Prometheus instrumentation for the HTTP API
// and the analytics pipeline, served at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journeyscope_api_requests_total",
			Help: "Total API requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "journeyscope_api_request_duration_seconds",
			Help:    "API request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "journeyscope_api_active_requests",
			Help: "In-flight API requests",
		},
	)

	analyticsComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journeyscope_analytics_computations_total",
			Help: "Analytics computations by domain and source",
		},
		[]string{"domain", "source"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(method, path, status).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		activeRequests.Inc()
	} else {
		activeRequests.Dec()
	}
}

// RecordComputation records one analytics computation. Source is
// "live" or "summary".
func RecordComputation(domain string, fromCache bool) {
	source := "live"
	if fromCache {
		source = "summary"
	}
	analyticsComputations.WithLabelValues(domain, source).Inc()
}

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
