// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package window resolves named period tokens and custom date ranges
// into concrete instant pairs used to scope analytics queries, and
// derives the equal-length comparison window that growth and retention
// metrics compare against.
package window

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a custom range has start after end.
// It is surfaced to the caller before any store query runs.
var ErrInvalidRange = errors.New("invalid date range: start date is after end date")

// Period is a named window token.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodLastWeek  Period = "last_week"
	PeriodLastMonth Period = "last_month"
	PeriodLastYear  Period = "last_year"
	PeriodAllTime   Period = "all_time"
	PeriodCustom    Period = "custom"
)

// Window is an instant range used to filter time-stamped records.
// Nil bounds mean unbounded on that side; both nil means all-time and
// no filtering is applied anywhere.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// AllTime returns the unbounded window.
func AllTime() Window {
	return Window{}
}

// Bounded reports whether both ends of the window are explicit.
// Growth, retention and churn are only defined for bounded windows.
func (w Window) Bounded() bool {
	return w.Start != nil && w.End != nil
}

// IsAllTime reports whether the window applies no filtering at all.
func (w Window) IsAllTime() bool {
	return w.Start == nil && w.End == nil
}

// Days returns the window length in days, at least 1 for bounded
// windows and 0 for unbounded ones.
func (w Window) Days() float64 {
	if !w.Bounded() {
		return 0
	}
	days := w.End.Sub(*w.Start).Hours() / 24
	if days < 1 {
		return 1
	}
	return days
}

// Weeks returns the window length in weeks with a floor of 1, the
// denominator for weekly activity rates.
func (w Window) Weeks() float64 {
	if !w.Bounded() {
		return 1
	}
	weeks := w.Days() / 7
	if weeks < 1 {
		return 1
	}
	return weeks
}

// String renders the window for logging and cache keys.
func (w Window) String() string {
	if w.IsAllTime() {
		return "all_time"
	}
	start, end := "open", "open"
	if w.Start != nil {
		start = w.Start.UTC().Format(time.RFC3339)
	}
	if w.End != nil {
		end = w.End.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s..%s", start, end)
}

// acceptedDateFormats are tried in order when parsing custom bounds.
// Callers may send bare calendar dates or full RFC3339 instants; either
// way only the calendar date is kept, per the normalization rule.
var acceptedDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Resolve turns a period token plus optional custom bounds into a
// concrete window. Empty-string custom bounds are treated as absent;
// a custom request with neither bound resolves to all-time rather
// than an error.
func Resolve(period Period, now time.Time, customStart, customEnd string) (Window, error) {
	switch period {
	case PeriodToday:
		return dayRange(now, now), nil
	case PeriodLastWeek:
		// 7-day inclusive window ending today
		return dayRange(now.AddDate(0, 0, -6), now), nil
	case PeriodLastMonth:
		// 30-day inclusive window ending today
		return dayRange(now.AddDate(0, 0, -29), now), nil
	case PeriodLastYear:
		// 365-day inclusive window ending today
		return dayRange(now.AddDate(0, 0, -364), now), nil
	case PeriodAllTime, "":
		return AllTime(), nil
	case PeriodCustom:
		return resolveCustom(customStart, customEnd)
	default:
		return Window{}, fmt.Errorf("unknown period token %q", period)
	}
}

// resolveCustom normalizes literal calendar dates to full-day bounds.
func resolveCustom(customStart, customEnd string) (Window, error) {
	if customStart == "" && customEnd == "" {
		return AllTime(), nil
	}

	var w Window
	if customStart != "" {
		t, err := parseDate(customStart)
		if err != nil {
			return Window{}, err
		}
		start := startOfDay(t)
		w.Start = &start
	}
	if customEnd != "" {
		t, err := parseDate(customEnd)
		if err != nil {
			return Window{}, err
		}
		end := endOfDay(t)
		w.End = &end
	}

	if w.Bounded() && w.Start.After(*w.End) {
		return Window{}, ErrInvalidRange
	}
	return w, nil
}

// Previous returns the equal-length window immediately preceding w.
// Half-open: the previous window ends exactly where w begins. Only
// defined for bounded windows; ok is false otherwise.
func Previous(w Window) (Window, bool) {
	if !w.Bounded() {
		return Window{}, false
	}
	duration := w.End.Sub(*w.Start)
	prevEnd := *w.Start
	prevStart := prevEnd.Add(-duration)
	return Window{Start: &prevStart, End: &prevEnd}, true
}

// parseDate parses a date input in any accepted format.
func parseDate(value string) (time.Time, error) {
	for _, layout := range acceptedDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", value)
}

// dayRange builds [00:00:00.000 of from, 23:59:59.999 of to] in UTC.
func dayRange(from, to time.Time) Window {
	start := startOfDay(from)
	end := endOfDay(to)
	return Window{Start: &start, End: &end}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}
