// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"context"
	"fmt"

	"github.com/journeyscope/journeyscope/internal/models"
)

// CountComments returns comments created inside the window.
func (db *DB) CountComments(ctx context.Context, f Filter) (int, error) {
	return db.countRows(ctx, "comments", "created_at", f, "")
}

// ActiveUserIDs returns the distinct ids of users who own at least one
// in-window journey or authored at least one in-window comment. Union,
// not intersection.
func (db *DB) ActiveUserIDs(ctx context.Context, f Filter) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	journeyClause, journeyArgs := buildWindowClause("start_date", f)
	commentClause, commentArgs := buildWindowClause("created_at", f)

	query := fmt.Sprintf(`
		SELECT user_id FROM journeys
		WHERE user_id IS NOT NULL AND user_id != ''%s
		UNION
		SELECT user_id FROM comments
		WHERE user_id IS NOT NULL AND user_id != ''%s`,
		journeyClause, commentClause)

	args := append(journeyArgs, commentArgs...)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active user ids: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// UserCreationsByDay buckets in-window user registrations by day.
func (db *DB) UserCreationsByDay(ctx context.Context, f Filter) ([]models.DailyCount, error) {
	return db.dailyCounts(ctx, "users", "created_at", f)
}

// JourneyCreationsByDay buckets in-window journey starts by day.
func (db *DB) JourneyCreationsByDay(ctx context.Context, f Filter) ([]models.DailyCount, error) {
	return db.dailyCounts(ctx, "journeys", "start_date", f)
}

// ActivityByDay buckets combined journey and comment activity by day.
func (db *DB) ActivityByDay(ctx context.Context, f Filter) ([]models.DailyCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	journeyClause, journeyArgs := buildWindowClause("start_date", f)
	commentClause, commentArgs := buildWindowClause("created_at", f)

	query := fmt.Sprintf(`
		SELECT day, COUNT(*) AS cnt FROM (
			SELECT strftime(start_date, '%%Y-%%m-%%d') AS day
			FROM journeys WHERE 1=1%s
			UNION ALL
			SELECT strftime(created_at, '%%Y-%%m-%%d') AS day
			FROM comments WHERE 1=1%s
		) activity
		GROUP BY day
		ORDER BY day ASC`, journeyClause, commentClause)

	args := append(journeyArgs, commentArgs...)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily activity: %w", err)
	}
	defer rows.Close()

	return scanDailyCounts(rows)
}
