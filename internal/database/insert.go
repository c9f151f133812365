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

// Entity rows are normally written by the external ETL pipeline. These
// insert methods are the ingestion surface it uses, shared by the mock
// seeder and the test fixtures.

// InsertUser writes one user row.
func (db *DB) InsertUser(ctx context.Context, u models.User) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO users (id, username, first_name, last_name, gender, country, city, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.FirstName, u.LastName, u.Gender, u.Country, u.City, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
	}
	return nil
}

// InsertJourney writes one journey row.
func (db *DB) InsertJourney(ctx context.Context, j models.Journey) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var endDate interface{}
	if j.EndDate != nil {
		endDate = *j.EndDate
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO journeys (id, user_id, title, destination, status, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.UserID, j.Title, j.Destination, j.Status, j.StartDate, endDate, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert journey %s: %w", j.ID, err)
	}
	return nil
}

// InsertComment writes one comment row.
func (db *DB) InsertComment(ctx context.Context, c models.Comment) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO comments (id, user_id, journey_id, body, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.JourneyID, c.Body, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment %s: %w", c.ID, err)
	}
	return nil
}

// InsertFriendship writes one directed friendship edge.
func (db *DB) InsertFriendship(ctx context.Context, f models.Friendship) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO friendships (id, follower_id, followee_id, created_at)
		VALUES (?, ?, ?, ?)`,
		f.ID, f.FollowerID, f.FolloweeID, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert friendship %s: %w", f.ID, err)
	}
	return nil
}

// InsertFriendRequest writes one friend-request row.
func (db *DB) InsertFriendRequest(ctx context.Context, r models.FriendRequest) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO friend_requests (id, from_user_id, to_user_id, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.FromUserID, r.ToUserID, r.Status, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert friend request %s: %w", r.ID, err)
	}
	return nil
}
