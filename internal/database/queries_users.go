// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/journeyscope/journeyscope/internal/models"
)

// UserActivityCount carries one user's window-scoped journey and
// comment counts for ranking and distribution math. Every user appears,
// including those with zero activity.
type UserActivityCount struct {
	UserID       string
	Username     string
	FirstName    string
	LastName     string
	JourneyCount int
	CommentCount int
}

// DisplayName resolves the ranking display name with the standard
// fallback chain.
func (u UserActivityCount) DisplayName() string {
	user := models.User{
		ID:        u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	return user.DisplayName()
}

// CountUsers returns the total user count. Never window-filtered.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	return db.countRows(ctx, "users", "created_at", Filter{}, "")
}

// CountUsersCreated returns users created inside the window.
func (db *DB) CountUsersCreated(ctx context.Context, f Filter) (int, error) {
	return db.countRows(ctx, "users", "created_at", f, "")
}

// GenderDistribution groups users created inside the window by gender.
func (db *DB) GenderDistribution(ctx context.Context, f Filter) ([]models.GroupCount, error) {
	return db.groupCounts(ctx, "users", "gender", "created_at", f, 0)
}

// RegistrationsByMonth buckets all user registrations by month.
func (db *DB) RegistrationsByMonth(ctx context.Context) ([]models.MonthlyCount, error) {
	return db.monthlyCounts(ctx, "users", "created_at", Filter{})
}

// UsersByCountry groups users created inside the window by country.
func (db *DB) UsersByCountry(ctx context.Context, f Filter, limit int) ([]models.GroupCount, error) {
	return db.groupCounts(ctx, "users", "country", "created_at", f, limit)
}

// UsersByCity groups users created inside the window by city.
func (db *DB) UsersByCity(ctx context.Context, f Filter, limit int) ([]models.GroupCount, error) {
	return db.groupCounts(ctx, "users", "city", "created_at", f, limit)
}

// UserCreationSpan returns the earliest and latest user creation
// timestamps, used to derive a weeks denominator for all-time windows.
// ok is false when the store holds no users.
func (db *DB) UserCreationSpan(ctx context.Context) (earliest, latest time.Time, ok bool, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var minTS, maxTS sql.NullTime
	row := db.conn.QueryRowContext(ctx, `SELECT MIN(created_at), MAX(created_at) FROM users`)
	if err := row.Scan(&minTS, &maxTS); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("failed to query user creation span: %w", err)
	}
	if !minTS.Valid || !maxTS.Valid {
		return time.Time{}, time.Time{}, false, nil
	}
	return minTS.Time, maxTS.Time, true, nil
}

// UserActivityCounts returns per-user journey and comment counts scoped
// to the window, over all users. Correlated subqueries keep users with
// zero in-window activity in the result, which the activity
// distribution depends on.
func (db *DB) UserActivityCounts(ctx context.Context, f Filter) ([]UserActivityCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	journeyClause, journeyArgs := buildWindowClause("j.start_date", f)
	commentClause, commentArgs := buildWindowClause("c.created_at", f)

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.username,
			COALESCE(u.first_name, ''),
			COALESCE(u.last_name, ''),
			(SELECT COUNT(*) FROM journeys j WHERE j.user_id = u.id%s) AS journey_count,
			(SELECT COUNT(*) FROM comments c WHERE c.user_id = u.id%s) AS comment_count
		FROM users u
		ORDER BY u.id ASC`, journeyClause, commentClause)

	args := append(journeyArgs, commentArgs...)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user activity counts: %w", err)
	}
	defer rows.Close()

	var results []UserActivityCount
	for rows.Next() {
		var uc UserActivityCount
		if err := rows.Scan(&uc.UserID, &uc.Username, &uc.FirstName, &uc.LastName,
			&uc.JourneyCount, &uc.CommentCount); err != nil {
			return nil, fmt.Errorf("failed to scan user activity count: %w", err)
		}
		results = append(results, uc)
	}
	return results, rows.Err()
}

// ListUsers returns id and display name for the dashboard user picker.
func (db *DB) ListUsers(ctx context.Context, limit int) ([]models.UserSummary, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, username, COALESCE(first_name, ''), COALESCE(last_name, '')
		FROM users
		ORDER BY username ASC, id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var results []models.UserSummary
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		results = append(results, models.UserSummary{ID: u.ID, DisplayName: u.DisplayName()})
	}
	return results, rows.Err()
}

// DisplayNamesByID resolves display names for a set of user ids, used
// by the network graph and influence ranking. Unknown ids are simply
// absent from the result.
func (db *DB) DisplayNamesByID(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT id, username, COALESCE(first_name, ''), COALESCE(last_name, '')
		FROM users
		WHERE id IN (%s)`, placeholders(len(ids)))

	rows, err := db.conn.QueryContext(ctx, query, stringArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query display names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string, len(ids))
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan display name: %w", err)
		}
		names[u.ID] = u.DisplayName()
	}
	return names, rows.Err()
}
