// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package analytics computes the window-scoped platform metrics: the
// overview, users, journeys, geographic and social domains. Every
// computation is a pure function of the window and the store snapshot,
// issued through an injected store handle; identical inputs yield
// identical outputs.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/logging"
	"github.com/journeyscope/journeyscope/internal/window"
)

// Domain selects which metrics bundle to compute.
type Domain string

const (
	DomainOverview   Domain = "overview"
	DomainUsers      Domain = "users"
	DomainJourneys   Domain = "journeys"
	DomainGeographic Domain = "geographic"
	DomainSocial     Domain = "social"
)

// networkGraphEdgeCap bounds the sampled friendship edges in the social
// graph. Rendering-cost control only; see SampleFriendshipEdges.
const networkGraphEdgeCap = 100

// fallbackWeeks is the weekly-rate denominator for an all-time window
// over a store with no observable user-creation span.
const fallbackWeeks = 4.0

// Result is a computed metrics bundle with its source annotation.
// FromCache marks bundles normalized from a legacy pre-aggregated
// summary; those are only ever produced for bare all-time requests.
type Result struct {
	Data      interface{}
	FromCache bool
}

// Aggregator computes metrics against an injected store handle. The
// clock is injectable so growth and completion cutoffs are testable.
type Aggregator struct {
	db  *database.DB
	now func() time.Time
}

// New creates an Aggregator over the given store.
func New(db *database.DB) *Aggregator {
	return &Aggregator{db: db, now: time.Now}
}

// NewWithClock creates an Aggregator with a fixed clock for tests.
func NewWithClock(db *database.DB, now func() time.Time) *Aggregator {
	return &Aggregator{db: db, now: now}
}

// Now returns the aggregator's current instant. Period tokens resolve
// against this clock so the API and the metrics agree on "today".
func (a *Aggregator) Now() time.Time {
	return a.now()
}

// Compute produces the metrics bundle for a domain and window. Any
// request with a non-empty window always takes the live path; a bare
// all-time request may reuse a legacy pre-aggregated summary when one
// exists for the domain, as a non-binding optimization.
func (a *Aggregator) Compute(ctx context.Context, domain Domain, w window.Window, limit int) (*Result, error) {
	if w.IsAllTime() {
		if cached, err := a.fromSummary(ctx, domain); err != nil {
			// Summary lookup failures never block the live path.
			logging.Warn().Err(err).Str("domain", string(domain)).
				Msg("Summary lookup failed, computing live")
		} else if cached != nil {
			return &Result{Data: cached, FromCache: true}, nil
		}
	}

	data, err := a.computeLive(ctx, domain, w, limit)
	if err != nil {
		return nil, err
	}
	return &Result{Data: data}, nil
}

func (a *Aggregator) computeLive(ctx context.Context, domain Domain, w window.Window, limit int) (interface{}, error) {
	switch domain {
	case DomainOverview:
		return a.Overview(ctx, w)
	case DomainUsers:
		return a.Users(ctx, w, limit)
	case DomainJourneys:
		return a.Journeys(ctx, w, limit)
	case DomainGeographic:
		return a.Geographic(ctx, w, limit)
	case DomainSocial:
		return a.Social(ctx, w, limit)
	default:
		return nil, fmt.Errorf("unknown analytics domain %q", domain)
	}
}

// weeksFor returns the weekly-rate denominator for a window. Bounded
// windows use their own length; all-time windows use the observed
// user-creation span, falling back to four weeks on an empty store.
func (a *Aggregator) weeksFor(ctx context.Context, w window.Window) (float64, error) {
	if w.Bounded() {
		return w.Weeks(), nil
	}

	earliest, latest, ok, err := a.db.UserCreationSpan(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallbackWeeks, nil
	}
	weeks := latest.Sub(earliest).Hours() / 24 / 7
	if weeks < 1 {
		return 1, nil
	}
	return weeks, nil
}
