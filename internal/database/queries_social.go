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

// CountFriendships returns the total friendship count, unfiltered.
// Friendship totals are window-invariant by design.
func (db *DB) CountFriendships(ctx context.Context) (int, error) {
	return db.countRows(ctx, "friendships", "created_at", Filter{}, "")
}

// CountFriendshipsInWindow returns friendships created inside the
// window, exposed as a supplementary figure for bounded requests.
func (db *DB) CountFriendshipsInWindow(ctx context.Context, f Filter) (int, error) {
	return db.countRows(ctx, "friendships", "created_at", f, "")
}

// DegreeRow is one user's friendship degree with display fields.
type DegreeRow struct {
	UserID    string
	Username  string
	FirstName string
	LastName  string
	Degree    int
}

// DisplayName resolves the ranking display name.
func (d DegreeRow) DisplayName() string {
	u := models.User{
		ID:        d.UserID,
		Username:  d.Username,
		FirstName: d.FirstName,
		LastName:  d.LastName,
	}
	return u.DisplayName()
}

// TopUsersByDegree ranks users by friendship degree, counting both
// directions of the directed edges.
func (db *DB) TopUsersByDegree(ctx context.Context, limit int) ([]DegreeRow, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT e.user_id,
			COALESCE(u.username, ''),
			COALESCE(u.first_name, ''),
			COALESCE(u.last_name, ''),
			COUNT(*) AS degree
		FROM (
			SELECT follower_id AS user_id FROM friendships
			UNION ALL
			SELECT followee_id AS user_id FROM friendships
		) e
		LEFT JOIN users u ON u.id = e.user_id
		GROUP BY e.user_id, u.username, u.first_name, u.last_name
		ORDER BY degree DESC, e.user_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by degree: %w", err)
	}
	defer rows.Close()

	var results []DegreeRow
	for rows.Next() {
		var dr DegreeRow
		if err := rows.Scan(&dr.UserID, &dr.Username, &dr.FirstName, &dr.LastName, &dr.Degree); err != nil {
			return nil, fmt.Errorf("failed to scan degree row: %w", err)
		}
		results = append(results, dr)
	}
	return results, rows.Err()
}

// SampleFriendshipEdges returns up to limit friendship edges in a
// stable order (oldest first, id tie-break) for the bounded network
// graph. Capping before degree computation biases influence groups
// toward the sampled edges; the cap exists for rendering cost only.
func (db *DB) SampleFriendshipEdges(ctx context.Context, limit int) ([]models.Friendship, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, follower_id, followee_id, created_at
		FROM friendships
		ORDER BY created_at ASC, id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample friendship edges: %w", err)
	}
	defer rows.Close()

	var edges []models.Friendship
	for rows.Next() {
		var e models.Friendship
		if err := rows.Scan(&e.ID, &e.FollowerID, &e.FolloweeID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friendship edge: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// FriendRequestCounts returns totals from the optional friend-request
// stream. A store without the stream (or with an empty one) yields all
// zeros, never an error.
func (db *DB) FriendRequestCounts(ctx context.Context) (total, accepted, pending int, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, qerr := db.conn.QueryContext(ctx, `
		SELECT lower(status), COUNT(*)
		FROM friend_requests
		GROUP BY lower(status)`)
	if qerr != nil {
		// The stream is optional: a missing table degrades to zeros.
		if strings.Contains(qerr.Error(), "does not exist") {
			return 0, 0, 0, nil
		}
		return 0, 0, 0, fmt.Errorf("failed to query friend requests: %w", qerr)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return 0, 0, 0, fmt.Errorf("failed to scan friend request count: %w", err)
		}
		total += count
		switch status {
		case "accepted":
			accepted += count
		case "pending":
			pending += count
		}
	}
	return total, accepted, pending, rows.Err()
}
