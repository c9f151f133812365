// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJourneyStatus(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  JourneyStatus
	}{
		{"active", "active", StatusActive},
		{"ongoing maps to active", "ongoing", StatusActive},
		{"published maps to active", "published", StatusActive},
		{"in_progress maps to active", "in_progress", StatusActive},
		{"uppercase normalized", "PUBLISHED", StatusActive},
		{"mixed case normalized", "OnGoing", StatusActive},
		{"draft", "draft", StatusDraft},
		{"planned maps to draft", "planned", StatusDraft},
		{"planning maps to draft", "planning", StatusDraft},
		{"completed", "completed", StatusCompleted},
		{"finished maps to completed", "finished", StatusCompleted},
		{"done maps to completed", "done", StatusCompleted},
		{"archived", "archived", StatusArchived},
		{"unrecognized token", "paused", StatusUnknown},
		{"empty token", "", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseJourneyStatus(tt.token))
		})
	}
}

func TestActiveStatusTokens(t *testing.T) {
	tokens := ActiveStatusTokens()

	assert.ElementsMatch(t, []string{"active", "ongoing", "published", "in_progress"}, tokens)

	// Deterministic ordering for stable SQL and cache keys.
	again := ActiveStatusTokens()
	assert.Equal(t, tokens, again)
}

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "username wins",
			user: User{ID: "u-123456", Username: "wanderer", FirstName: "Ada", LastName: "Lovelace"},
			want: "wanderer",
		},
		{
			name: "falls back to full name",
			user: User{ID: "u-123456", FirstName: "Ada", LastName: "Lovelace"},
			want: "Ada Lovelace",
		},
		{
			name: "first name only",
			user: User{ID: "u-123456", FirstName: "Ada"},
			want: "Ada",
		},
		{
			name: "falls back to short id",
			user: User{ID: "user-abcdef123456"},
			want: "User 123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestJourneyDisplayTitle(t *testing.T) {
	withTitle := Journey{ID: "j-000042", Title: "Crossing Patagonia"}
	assert.Equal(t, "Crossing Patagonia", withTitle.DisplayTitle())

	untitled := Journey{ID: "journey-99887766"}
	assert.Equal(t, "Journey 887766", untitled.DisplayTitle())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "123456", ShortID("user-abcdef123456"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "", ShortID(""))
}
