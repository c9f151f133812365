// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package models defines the entity records read from the analytics
// store and the JSON shapes served by the API.
package models

import "time"

// User is a platform member. CreatedAt is the windowing timestamp.
// Total user counts are never window-filtered; only new-user counts and
// demographic breakdowns are.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Country   string    `json:"country,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName resolves the name shown in rankings: username, then
// "first last", then a short-id fallback.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.FirstName != "" || u.LastName != "" {
		name := u.FirstName
		if u.LastName != "" {
			if name != "" {
				name += " "
			}
			name += u.LastName
		}
		return name
	}
	return "User " + ShortID(u.ID)
}

// Journey is a travel journal entry. StartDate is the windowing
// timestamp; EndDate may be absent for open-ended journeys.
type Journey struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title,omitempty"`
	Destination string     `json:"destination,omitempty"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DisplayTitle resolves the title shown in rankings, falling back to a
// short-id label for untitled journeys.
func (j Journey) DisplayTitle() string {
	if j.Title != "" {
		return j.Title
	}
	return "Journey " + ShortID(j.ID)
}

// Comment is a reaction to a journey. CreatedAt is the windowing
// timestamp; comments drive engagement and active-user status.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	JourneyID string    `json:"journey_id"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Friendship is a directed follower edge between two users. Aggregate
// friendship totals are window-invariant by design.
type Friendship struct {
	ID         string    `json:"id"`
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FriendRequest is an entry in the optional request stream feeding the
// social funnel. Status is one of pending/accepted/rejected.
type FriendRequest struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ShortID returns the last six characters of an id, used for display
// fallbacks on records without a name or title.
func ShortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
