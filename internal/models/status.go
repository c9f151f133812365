// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package models

import (
	"sort"
	"strings"
)

// JourneyStatus is the closed set of journey states. Raw store tokens
// vary by origin (legacy importers wrote "PUBLISHED", mobile clients
// write "ongoing"), so all classification goes through ParseJourneyStatus
// instead of ad hoc string matching at query sites.
type JourneyStatus int

const (
	StatusUnknown JourneyStatus = iota
	StatusDraft
	StatusActive
	StatusCompleted
	StatusArchived
)

// statusTokens maps normalized raw store tokens to the enumeration.
var statusTokens = map[string]JourneyStatus{
	"draft":       StatusDraft,
	"planned":     StatusDraft,
	"planning":    StatusDraft,
	"active":      StatusActive,
	"ongoing":     StatusActive,
	"published":   StatusActive,
	"in_progress": StatusActive,
	"completed":   StatusCompleted,
	"finished":    StatusCompleted,
	"done":        StatusCompleted,
	"archived":    StatusArchived,
}

// ParseJourneyStatus classifies a raw store token, case-insensitively.
// Unrecognized tokens map to StatusUnknown rather than failing.
func ParseJourneyStatus(raw string) JourneyStatus {
	if s, ok := statusTokens[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusUnknown
}

// String returns the canonical token for the status.
func (s JourneyStatus) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusArchived:
		return "archived"
	default:
		return "unknown"
	}
}

// ActiveStatusTokens returns every raw token that classifies as
// StatusActive, for use in store-side IN predicates.
func ActiveStatusTokens() []string {
	tokens := make([]string, 0, 4)
	for raw, s := range statusTokens {
		if s == StatusActive {
			tokens = append(tokens, raw)
		}
	}
	sort.Strings(tokens)
	return tokens
}
