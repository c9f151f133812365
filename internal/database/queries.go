// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/journeyscope/journeyscope/internal/models"
)

// countRows runs a COUNT(*) over a table with the window filter applied
// to tsColumn and an optional extra predicate appended verbatim.
func (db *DB) countRows(ctx context.Context, table, tsColumn string, f Filter, extra string, extraArgs ...interface{}) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	clause, args := buildWindowClause(tsColumn, f)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE 1=1%s%s", table, clause, extra)
	args = append(args, extraArgs...)

	var count int
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// groupCounts runs a GROUP BY count over a table, skipping NULL and
// empty group values, ordered by count descending then value for a
// stable ranking.
func (db *DB) groupCounts(ctx context.Context, table, groupColumn, tsColumn string, f Filter, limit int) ([]models.GroupCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	clause, args := buildWindowClause(tsColumn, f)
	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS cnt
		FROM %[2]s
		WHERE %[1]s IS NOT NULL AND %[1]s != ''%[3]s
		GROUP BY %[1]s
		ORDER BY cnt DESC, %[1]s ASC`, groupColumn, table, clause)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to group %s by %s: %w", table, groupColumn, err)
	}
	defer rows.Close()

	return scanGroupCounts(rows)
}

// monthlyCounts buckets a table's rows by calendar month of tsColumn.
func (db *DB) monthlyCounts(ctx context.Context, table, tsColumn string, f Filter) ([]models.MonthlyCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	clause, args := buildWindowClause(tsColumn, f)
	query := fmt.Sprintf(`
		SELECT strftime(%[1]s, '%%Y-%%m') AS month, COUNT(*) AS cnt
		FROM %[2]s
		WHERE 1=1%[3]s
		GROUP BY month
		ORDER BY month ASC`, tsColumn, table, clause)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket %s by month: %w", table, err)
	}
	defer rows.Close()

	var results []models.MonthlyCount
	for rows.Next() {
		var mc models.MonthlyCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count: %w", err)
		}
		results = append(results, mc)
	}
	return results, rows.Err()
}

// dailyCounts buckets a table's rows by calendar day of tsColumn.
func (db *DB) dailyCounts(ctx context.Context, table, tsColumn string, f Filter) ([]models.DailyCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	clause, args := buildWindowClause(tsColumn, f)
	query := fmt.Sprintf(`
		SELECT strftime(%[1]s, '%%Y-%%m-%%d') AS day, COUNT(*) AS cnt
		FROM %[2]s
		WHERE 1=1%[3]s
		GROUP BY day
		ORDER BY day ASC`, tsColumn, table, clause)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket %s by day: %w", table, err)
	}
	defer rows.Close()

	return scanDailyCounts(rows)
}

// placeholders renders n comma-separated SQL placeholders.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// stringArgs converts a string slice to query arguments.
func stringArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
