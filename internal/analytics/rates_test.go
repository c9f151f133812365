// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/journeyscope/journeyscope/internal/database"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero previous yields zero", 42, 0, 0},
		{"both zero", 0, 0, 0},
		{"rounds to two decimals", 1, 3, -66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, growthRate(tt.current, tt.previous), 0.001)
		})
	}
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 1.47, ratio(88, 60), 0.001)
	assert.InDelta(t, 1.01, ratio(104, 103), 0.001)
	assert.Zero(t, ratio(5, 0))
	assert.Zero(t, ratio(0, 0))
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 25, percentage(1, 4), 0.001)
	assert.InDelta(t, 33.33, percentage(1, 3), 0.001)
	assert.Zero(t, percentage(10, 0))
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 1.47, round2(1.4666666), 0.0001)
	assert.InDelta(t, -66.67, round2(-66.6666), 0.0001)
	assert.Zero(t, round2(0))
}

func TestNetworkDensity(t *testing.T) {
	// 88 directed edges over 60 users: 2*88/(60*59)*100
	assert.InDelta(t, 4.97, networkDensity(88, 60), 0.01)
	assert.Zero(t, networkDensity(10, 1))
	assert.Zero(t, networkDensity(0, 0))
}

func TestInfluenceGroup(t *testing.T) {
	tests := []struct {
		name      string
		degree    int
		maxDegree int
		want      int
	}{
		{"max degree lands in top band", 10, 10, 4},
		{"just above 80 percent", 9, 10, 4},
		{"exactly 80 percent is band 3", 8, 10, 3},
		{"exactly 60 percent is band 2", 6, 10, 2},
		{"exactly 40 percent is band 1", 4, 10, 1},
		{"exactly 20 percent is band 0", 2, 10, 0},
		{"zero degree", 0, 10, 0},
		{"empty graph", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, influenceGroup(tt.degree, tt.maxDegree))
		})
	}
}

func TestBuildActivityDistribution(t *testing.T) {
	counts := []database.UserActivityCount{
		{UserID: "u1", JourneyCount: 6},                   // 3.0 per week: active
		{UserID: "u2", JourneyCount: 2, CommentCount: 2},  // 2.0 per week: medium
		{UserID: "u3", JourneyCount: 1},                   // 0.5 per week: inactive
		{UserID: "u4"},                                    // inactive
		{UserID: "u5", CommentCount: 12},                  // 6.0 per week: active
	}
	dist := buildActivityDistribution(counts, 2)

	assert.Len(t, dist, 3)
	assert.Equal(t, bucketInactive, dist[0].Bucket)
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, bucketMedium, dist[1].Bucket)
	assert.Equal(t, 1, dist[1].Count)
	assert.Equal(t, bucketActive, dist[2].Bucket)
	assert.Equal(t, 2, dist[2].Count)

	// Buckets always partition the full user set.
	total := dist[0].Count + dist[1].Count + dist[2].Count
	assert.Equal(t, len(counts), total)
	assert.InDelta(t, 100, dist[0].Percentage+dist[1].Percentage+dist[2].Percentage, 0.1)
}
