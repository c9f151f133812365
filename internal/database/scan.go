// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"database/sql"
	"fmt"

	"github.com/journeyscope/journeyscope/internal/models"
)

// scanGroupCounts drains rows of (value, count) pairs.
func scanGroupCounts(rows *sql.Rows) ([]models.GroupCount, error) {
	var results []models.GroupCount
	for rows.Next() {
		var gc models.GroupCount
		if err := rows.Scan(&gc.Value, &gc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan group count: %w", err)
		}
		results = append(results, gc)
	}
	return results, rows.Err()
}

// scanDailyCounts drains rows of (day, count) pairs.
func scanDailyCounts(rows *sql.Rows) ([]models.DailyCount, error) {
	var results []models.DailyCount
	for rows.Next() {
		var dc models.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		results = append(results, dc)
	}
	return results, rows.Err()
}

// scanStrings drains rows of a single string column.
func scanStrings(rows *sql.Rows) ([]string, error) {
	var results []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan string column: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
