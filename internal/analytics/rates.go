// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import "math"

// growthRate returns the percentage change from previous to current.
// A zero previous value yields 0, never a division error; callers gate
// on bounded windows, so unbounded requests report 0 as well.
func growthRate(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

// ratio divides with a 0 fallback for empty denominators.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return round2(numerator / denominator)
}

// percentage is ratio expressed out of 100.
func percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return round2(part / whole * 100)
}

// round2 rounds to two decimal places, the precision served to the
// presentation layer.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
