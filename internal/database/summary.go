// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/journeyscope/journeyscope/internal/models"
)

// GetSummary fetches the legacy pre-aggregated row for a domain.
// Returns (nil, nil) when no summary exists; the caller falls through
// to live computation.
func (db *DB) GetSummary(ctx context.Context, domain string) (*models.AnalyticsSummary, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var s models.AnalyticsSummary
	row := db.conn.QueryRowContext(ctx, `
		SELECT domain, total_users, active_users, total_journeys,
			active_journeys, total_comments, total_friendships, generated_at
		FROM analytics_summaries
		WHERE domain = ?`, domain)

	err := row.Scan(&s.Domain, &s.TotalUsers, &s.ActiveUsers, &s.TotalJourneys,
		&s.ActiveJourneys, &s.TotalComments, &s.TotalFriendships, &s.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics summary for %s: %w", domain, err)
	}
	return &s, nil
}

// UpsertSummary writes a pre-aggregated row. Summaries are produced by
// an external batch job in production; this method exists for seeding
// and tests.
func (db *DB) UpsertSummary(ctx context.Context, s *models.AnalyticsSummary) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT OR REPLACE INTO analytics_summaries
			(domain, total_users, active_users, total_journeys,
			 active_journeys, total_comments, total_friendships, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Domain, s.TotalUsers, s.ActiveUsers, s.TotalJourneys,
		s.ActiveJourneys, s.TotalComments, s.TotalFriendships, s.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert analytics summary for %s: %w", s.Domain, err)
	}
	return nil
}
