// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package window

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func TestResolveNamedPeriods(t *testing.T) {
	tests := []struct {
		name      string
		period    Period
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today is a single calendar day",
			period:    PeriodToday,
			wantStart: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "last_week spans 7 inclusive days",
			period:    PeriodLastWeek,
			wantStart: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "last_month spans 30 inclusive days",
			period:    PeriodLastMonth,
			wantStart: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "last_year spans 365 inclusive days",
			period:    PeriodLastYear,
			wantStart: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Resolve(tt.period, testNow, "", "")
			require.NoError(t, err)
			require.True(t, w.Bounded())
			assert.Equal(t, tt.wantStart, *w.Start)
			assert.Equal(t, tt.wantEnd, *w.End)
		})
	}
}

func TestResolveAllTime(t *testing.T) {
	w, err := Resolve(PeriodAllTime, testNow, "", "")
	require.NoError(t, err)
	assert.True(t, w.IsAllTime())
	assert.False(t, w.Bounded())

	// An empty period token also resolves to all-time
	w, err = Resolve("", testNow, "", "")
	require.NoError(t, err)
	assert.True(t, w.IsAllTime())
}

func TestResolveCustom(t *testing.T) {
	t.Run("dates normalize to full-day bounds", func(t *testing.T) {
		w, err := Resolve(PeriodCustom, testNow, "2026-01-01", "2026-01-31")
		require.NoError(t, err)
		require.True(t, w.Bounded())
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *w.Start)
		assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 999000000, time.UTC), *w.End)
	})

	t.Run("RFC3339 instants keep only the calendar date", func(t *testing.T) {
		w, err := Resolve(PeriodCustom, testNow, "2026-01-01T10:30:00Z", "2026-01-02T18:00:00Z")
		require.NoError(t, err)
		require.True(t, w.Bounded())
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *w.Start)
		assert.Equal(t, time.Date(2026, 1, 2, 23, 59, 59, 999000000, time.UTC), *w.End)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := Resolve(PeriodCustom, testNow, "2026-02-01", "2026-01-01")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRange))
	})

	t.Run("empty strings are treated as absent", func(t *testing.T) {
		w, err := Resolve(PeriodCustom, testNow, "", "")
		require.NoError(t, err)
		assert.True(t, w.IsAllTime())
	})

	t.Run("single bound yields an open-ended window", func(t *testing.T) {
		w, err := Resolve(PeriodCustom, testNow, "2026-01-01", "")
		require.NoError(t, err)
		assert.False(t, w.Bounded())
		assert.False(t, w.IsAllTime())
		require.NotNil(t, w.Start)
		assert.Nil(t, w.End)
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		_, err := Resolve(PeriodCustom, testNow, "not-a-date", "")
		assert.Error(t, err)
	})
}

func TestResolveUnknownPeriod(t *testing.T) {
	_, err := Resolve("fortnight", testNow, "", "")
	assert.Error(t, err)
}

func TestPrevious(t *testing.T) {
	t.Run("previous window ends where the current begins", func(t *testing.T) {
		w, err := Resolve(PeriodLastWeek, testNow, "", "")
		require.NoError(t, err)

		prev, ok := Previous(w)
		require.True(t, ok)
		assert.Equal(t, *w.Start, *prev.End)
		assert.Equal(t, w.End.Sub(*w.Start), prev.End.Sub(*prev.Start))
	})

	t.Run("undefined for unbounded windows", func(t *testing.T) {
		_, ok := Previous(AllTime())
		assert.False(t, ok)

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		_, ok = Previous(Window{Start: &start})
		assert.False(t, ok)
	})
}

func TestWeeks(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		want   float64
	}{
		{"today floors to one week", PeriodToday, 1},
		{"last_week is one week", PeriodLastWeek, 1},
		{"last_month is about 4.3 weeks", PeriodLastMonth, 30.0 / 7},
		{"last_year is about 52 weeks", PeriodLastYear, 365.0 / 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Resolve(tt.period, testNow, "", "")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, w.Weeks(), 0.01)
		})
	}

	// Unbounded windows fall back to a floor of 1; the aggregator
	// substitutes the observed user-creation span instead.
	assert.Equal(t, 1.0, AllTime().Weeks())
}

func TestWindowNesting(t *testing.T) {
	// Named windows are nested by construction: each longer period
	// contains the shorter one.
	today, _ := Resolve(PeriodToday, testNow, "", "")
	week, _ := Resolve(PeriodLastWeek, testNow, "", "")
	month, _ := Resolve(PeriodLastMonth, testNow, "", "")
	year, _ := Resolve(PeriodLastYear, testNow, "", "")

	assert.True(t, !week.Start.After(*today.Start))
	assert.True(t, !month.Start.After(*week.Start))
	assert.True(t, !year.Start.After(*month.Start))
	assert.Equal(t, *today.End, *week.End)
	assert.Equal(t, *week.End, *month.End)
	assert.Equal(t, *month.End, *year.End)
}
