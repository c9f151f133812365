// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package cache

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", "value")
	got, found := c.Get("key")
	require.True(t, found)
	assert.Equal(t, "value", got)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)

	c.SetWithTTL("ephemeral", 42, 10*time.Millisecond)
	_, found := c.Get("ephemeral")
	assert.True(t, found)

	time.Sleep(30 * time.Millisecond)
	_, found = c.Get("ephemeral")
	assert.False(t, found)
}

func TestDeleteAndClear(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)
	_, found = c.Get("b")
	assert.True(t, found)

	c.Clear()
	_, found = c.Get("b")
	assert.False(t, found)
	assert.Zero(t, c.GetStats().TotalKeys)
}

func TestStatsAndHitRate(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", "value")
	c.Get("key")
	c.Get("key")
	c.Get("missing")

	stats := c.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 66.67, c.HitRate(), 0.01)
}

func TestHitRateEmptyCache(t *testing.T) {
	c := New(time.Minute)
	assert.Zero(t, c.HitRate())
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			c.Get("shared")
		}()
	}
	wg.Wait()

	_, found := c.Get("shared")
	assert.True(t, found)
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		Window string
		Limit  int
	}

	k1 := GenerateKey("AnalyticsOverview", params{"all_time", 10})
	k2 := GenerateKey("AnalyticsOverview", params{"all_time", 10})
	k3 := GenerateKey("AnalyticsOverview", params{"all_time", 20})
	k4 := GenerateKey("AnalyticsUsers", params{"all_time", 10})

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, k1, k4)
	assert.True(t, strings.HasPrefix(k1, "AnalyticsOverview:"))
}
