// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"context"
	"fmt"
)

// createTables creates the entity streams and the legacy summary table.
// Entities are written by an external ETL process; this subsystem only
// creates the schema so an empty store still answers every query.
func (db *DB) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR PRIMARY KEY,
			username VARCHAR NOT NULL,
			first_name VARCHAR,
			last_name VARCHAR,
			gender VARCHAR,
			country VARCHAR,
			city VARCHAR,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS journeys (
			id VARCHAR PRIMARY KEY,
			user_id VARCHAR,
			title VARCHAR,
			destination VARCHAR,
			status VARCHAR,
			start_date TIMESTAMP NOT NULL,
			end_date TIMESTAMP,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id VARCHAR PRIMARY KEY,
			user_id VARCHAR NOT NULL,
			journey_id VARCHAR NOT NULL,
			body VARCHAR,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS friendships (
			id VARCHAR PRIMARY KEY,
			follower_id VARCHAR NOT NULL,
			followee_id VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS friend_requests (
			id VARCHAR PRIMARY KEY,
			from_user_id VARCHAR NOT NULL,
			to_user_id VARCHAR NOT NULL,
			status VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS analytics_summaries (
			domain VARCHAR PRIMARY KEY,
			total_users INTEGER NOT NULL DEFAULT 0,
			active_users INTEGER NOT NULL DEFAULT 0,
			total_journeys INTEGER NOT NULL DEFAULT 0,
			active_journeys INTEGER NOT NULL DEFAULT 0,
			total_comments INTEGER NOT NULL DEFAULT 0,
			total_friendships INTEGER NOT NULL DEFAULT 0,
			generated_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// createIndexes adds indexes on the windowing and join columns.
func (db *DB) createIndexes(ctx context.Context) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_journeys_start_date ON journeys(start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_journeys_user_id ON journeys(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_user_id ON comments(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_journey_id ON comments(journey_id)`,
		`CREATE INDEX IF NOT EXISTS idx_friendships_follower ON friendships(follower_id)`,
		`CREATE INDEX IF NOT EXISTS idx_friendships_followee ON friendships(followee_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
