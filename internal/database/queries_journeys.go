// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/journeyscope/journeyscope/internal/models"
)

// CountJourneys returns journeys whose start date falls in the window.
func (db *DB) CountJourneys(ctx context.Context, f Filter) (int, error) {
	return db.countRows(ctx, "journeys", "start_date", f, "")
}

// CountActiveJourneys returns in-window journeys whose status token
// classifies as active. Matching is case-insensitive against the
// closed token set.
func (db *DB) CountActiveJourneys(ctx context.Context, f Filter) (int, error) {
	tokens := models.ActiveStatusTokens()
	extra := fmt.Sprintf(" AND lower(status) IN (%s)", placeholders(len(tokens)))
	return db.countRows(ctx, "journeys", "start_date", f, extra, stringArgs(tokens)...)
}

// CountCompletedJourneys returns in-window journeys whose end date is
// strictly in the past relative to now.
func (db *DB) CountCompletedJourneys(ctx context.Context, f Filter, now time.Time) (int, error) {
	return db.countRows(ctx, "journeys", "start_date", f,
		" AND end_date IS NOT NULL AND end_date < ?", now)
}

// JourneyDurationsDays returns the duration in days of every in-window
// journey that has both a start and an end date. Bucketing happens in
// the aggregator against the fixed histogram boundaries.
func (db *DB) JourneyDurationsDays(ctx context.Context, f Filter) ([]float64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	clause, args := buildWindowClause("start_date", f)
	query := fmt.Sprintf(`
		SELECT date_diff('second', start_date, end_date) / 86400.0
		FROM journeys
		WHERE end_date IS NOT NULL AND end_date >= start_date%s`, clause)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journey durations: %w", err)
	}
	defer rows.Close()

	var durations []float64
	for rows.Next() {
		var d float64
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan journey duration: %w", err)
		}
		durations = append(durations, d)
	}
	return durations, rows.Err()
}

// DestinationCounts returns the top destinations by in-window journey
// count.
func (db *DB) DestinationCounts(ctx context.Context, f Filter, limit int) ([]models.GroupCount, error) {
	return db.groupCounts(ctx, "journeys", "destination", "start_date", f, limit)
}

// JourneysByMonth buckets in-window journeys by start month.
func (db *DB) JourneysByMonth(ctx context.Context, f Filter) ([]models.MonthlyCount, error) {
	return db.monthlyCounts(ctx, "journeys", "start_date", f)
}

// MostCommentedJourneys ranks journeys by in-window comment count.
// Titles fall back to a short-id label in the aggregator; here empty
// titles come back as empty strings.
func (db *DB) MostCommentedJourneys(ctx context.Context, f Filter, limit int) ([]models.CommentedJourney, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	clause, args := buildWindowClause("c.created_at", f)
	query := fmt.Sprintf(`
		SELECT c.journey_id, COALESCE(j.title, ''), COUNT(*) AS cnt
		FROM comments c
		LEFT JOIN journeys j ON j.id = c.journey_id
		WHERE 1=1%s
		GROUP BY c.journey_id, j.title
		ORDER BY cnt DESC, c.journey_id ASC
		LIMIT ?`, clause)
	args = append(args, limit)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query most commented journeys: %w", err)
	}
	defer rows.Close()

	var results []models.CommentedJourney
	for rows.Next() {
		var cj models.CommentedJourney
		if err := rows.Scan(&cj.JourneyID, &cj.Title, &cj.CommentCount); err != nil {
			return nil, fmt.Errorf("failed to scan commented journey: %w", err)
		}
		results = append(results, cj)
	}
	return results, rows.Err()
}

// TopCreatorRow is one row of the top-creators ranking before display
// name resolution.
type TopCreatorRow struct {
	UserID       string
	Username     string
	FirstName    string
	LastName     string
	JourneyCount int
}

// TopJourneyCreators ranks users by in-window journey count, excluding
// journeys with a missing or empty owner id.
func (db *DB) TopJourneyCreators(ctx context.Context, f Filter, limit int) ([]TopCreatorRow, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	clause, args := buildWindowClause("j.start_date", f)
	query := fmt.Sprintf(`
		SELECT j.user_id,
			COALESCE(u.username, ''),
			COALESCE(u.first_name, ''),
			COALESCE(u.last_name, ''),
			COUNT(*) AS cnt
		FROM journeys j
		LEFT JOIN users u ON u.id = j.user_id
		WHERE j.user_id IS NOT NULL AND j.user_id != ''%s
		GROUP BY j.user_id, u.username, u.first_name, u.last_name
		ORDER BY cnt DESC, j.user_id ASC
		LIMIT ?`, clause)
	args = append(args, limit)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top journey creators: %w", err)
	}
	defer rows.Close()

	var results []TopCreatorRow
	for rows.Next() {
		var tc TopCreatorRow
		if err := rows.Scan(&tc.UserID, &tc.Username, &tc.FirstName, &tc.LastName, &tc.JourneyCount); err != nil {
			return nil, fmt.Errorf("failed to scan top creator: %w", err)
		}
		results = append(results, tc)
	}
	return results, rows.Err()
}

// ListDestinations returns the distinct destination names for the
// dashboard destination picker.
func (db *DB) ListDestinations(ctx context.Context) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT DISTINCT destination
		FROM journeys
		WHERE destination IS NOT NULL AND destination != ''
		ORDER BY destination ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows)
}
