// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package models

import "time"

// APIResponse is the uniform response envelope for every endpoint.
//
// Computed reports that the metrics were derived live for this request.
// FromCache reports that a pre-aggregated all-time shape was reused;
// the two are mutually exclusive and both absent on error responses.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Computed  bool        `json:"computed,omitempty"`
	FromCache bool        `json:"fromCache,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewSuccessResponse builds a live-computation success envelope.
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		Computed:  true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewCachedResponse builds a success envelope for data served from a
// pre-aggregated summary or the response cache. Only bare all-time
// requests may ever produce one.
func NewCachedResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		FromCache: true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewErrorResponse builds a failure envelope with a single message.
func NewErrorResponse(message string) *APIResponse {
	return &APIResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	Uptime    string `json:"uptime,omitempty"`
	Database  string `json:"database,omitempty"`
	Timestamp string `json:"timestamp"`
}

// UserSummary is the thin shape served by the user picker endpoint.
type UserSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
