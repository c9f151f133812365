// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journeyscope/journeyscope/internal/analytics"
	"github.com/journeyscope/journeyscope/internal/cache"
	"github.com/journeyscope/journeyscope/internal/config"
	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8090, Timeout: 30 * time.Second},
		Database: config.DatabaseConfig{
			Path: ":memory:", MaxMemory: "512MB", Threads: 2,
		},
		API: config.APIConfig{DefaultPageSize: 10, MaxPageSize: 100, CacheTTL: 5 * time.Minute},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "console"},
	}
}

func newTestServer(t *testing.T) (http.Handler, *database.DB) {
	t.Helper()

	cfg := testConfig()
	db, err := database.New(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	agg := analytics.NewWithClock(db, func() time.Time { return testNow })
	handler := NewHandler(db, agg, cache.New(cfg.API.CacheTTL), cfg)
	return NewRouter(handler, cfg).Setup(), db
}

func seedAPITestData(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	day := func(v string) time.Time {
		d, err := time.Parse("2006-01-02", v)
		require.NoError(t, err)
		return d
	}

	require.NoError(t, db.InsertUser(ctx, models.User{
		ID: "u1", Username: "alice", Country: "France", CreatedAt: day("2026-02-01")}))
	require.NoError(t, db.InsertUser(ctx, models.User{
		ID: "u2", Username: "bob", Country: "Japan", CreatedAt: day("2026-03-05")}))
	require.NoError(t, db.InsertJourney(ctx, models.Journey{
		ID: "j1", UserID: "u1", Title: "Spring in Paris", Destination: "Paris",
		Status: "active", StartDate: day("2026-03-10"), CreatedAt: day("2026-03-10")}))
	require.NoError(t, db.InsertComment(ctx, models.Comment{
		ID: "c1", UserID: "u2", JourneyID: "j1", CreatedAt: day("2026-03-11")}))
	require.NoError(t, db.InsertFriendship(ctx, models.Friendship{
		ID: "f1", FollowerID: "u1", FolloweeID: "u2", CreatedAt: day("2026-03-01")}))
}

func doRequest(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return rec, resp
}

func TestAnalyticsOverviewEnvelope(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	rec, resp := doRequest(t, h, "/api/v1/analytics/overview?period=last_week")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.True(t, resp.Success)
	assert.True(t, resp.Computed)
	assert.False(t, resp.FromCache)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
	assert.NotEmpty(t, resp.Timestamp)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "total_users")
	assert.Contains(t, data, "engagement_rate")
	assert.Contains(t, data, "user_trend")
}

func TestAnalyticsAllDomainsRespond(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	for _, path := range []string{
		"/api/v1/analytics/overview",
		"/api/v1/analytics/users",
		"/api/v1/analytics/journeys",
		"/api/v1/analytics/geographic",
		"/api/v1/analytics/social",
	} {
		rec, resp := doRequest(t, h, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.True(t, resp.Success, path)
		assert.NotNil(t, resp.Data, path)
	}
}

func TestAnalyticsInvalidRange(t *testing.T) {
	h, _ := newTestServer(t)

	rec, resp := doRequest(t, h,
		"/api/v1/analytics/overview?period=custom&startDate=2026-03-10&endDate=2026-03-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "start date is after end date")
	assert.Nil(t, resp.Data)
}

func TestAnalyticsInvalidPeriod(t *testing.T) {
	h, _ := newTestServer(t)

	rec, resp := doRequest(t, h, "/api/v1/analytics/overview?period=fortnight")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestAnalyticsMalformedDate(t *testing.T) {
	h, _ := newTestServer(t)

	rec, resp := doRequest(t, h, "/api/v1/analytics/overview?startDate=not-a-date")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestAnalyticsLimitValidation(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	rec, resp := doRequest(t, h, "/api/v1/analytics/users?limit=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	// Oversized limits clamp rather than fail.
	rec, resp = doRequest(t, h, "/api/v1/analytics/users?limit=100000")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestAnalyticsAllTimeSecondRequestCached(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	_, first := doRequest(t, h, "/api/v1/analytics/overview")
	assert.True(t, first.Computed)
	assert.False(t, first.FromCache)

	_, second := doRequest(t, h, "/api/v1/analytics/overview")
	assert.True(t, second.FromCache)
	assert.False(t, second.Computed)
}

func TestAnalyticsWindowedNeverCached(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	for i := 0; i < 2; i++ {
		_, resp := doRequest(t, h, "/api/v1/analytics/overview?period=last_month")
		assert.True(t, resp.Computed)
		assert.False(t, resp.FromCache)
	}
}

func TestAnalyticsSummaryServesAllTime(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	require.NoError(t, db.UpsertSummary(context.Background(), &models.AnalyticsSummary{
		Domain: "overview", TotalUsers: 60, ActiveUsers: 30, TotalJourneys: 103,
		TotalComments: 104, TotalFriendships: 88, GeneratedAt: testNow,
	}))

	rec, resp := doRequest(t, h, "/api/v1/analytics/overview")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.True(t, resp.FromCache)

	data := resp.Data.(map[string]interface{})
	assert.InDelta(t, 60, data["total_users"], 0.001)
	assert.InDelta(t, 1.47, data["avg_friends_per_user"], 0.001)

	// The same summary never serves a windowed request.
	_, live := doRequest(t, h, "/api/v1/analytics/overview?period=last_week")
	assert.True(t, live.Computed)
	liveData := live.Data.(map[string]interface{})
	assert.InDelta(t, 2, liveData["total_users"], 0.001)
}

func TestUsersEndpoint(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	rec, resp := doRequest(t, h, "/api/v1/users")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	users, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, users, 2)
	first := users[0].(map[string]interface{})
	assert.Contains(t, first, "id")
	assert.Contains(t, first, "display_name")
}

func TestDestinationsEndpoint(t *testing.T) {
	h, db := newTestServer(t)
	seedAPITestData(t, db)

	rec, resp := doRequest(t, h, "/api/v1/destinations")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, []interface{}{"Paris"}, resp.Data)
}

func TestHealthEndpoints(t *testing.T) {
	h, _ := newTestServer(t)

	rec, resp := doRequest(t, h, "/api/v1/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = doRequest(t, h, "/api/v1/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = doRequest(t, h, "/api/v1/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
}

func TestRequestIDHeader(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// Upstream-supplied ids pass through untouched.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_")
}

func TestUnknownRouteReturns404(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sessions", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
