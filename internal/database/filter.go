// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"fmt"
	"time"

	"github.com/journeyscope/journeyscope/internal/window"
)

// Filter scopes a query to an instant range on the stream's windowing
// column. Nil bounds leave that side open; the zero Filter matches all
// records.
type Filter struct {
	Start *time.Time
	End   *time.Time
}

// FilterFromWindow converts a resolved window into a query filter.
func FilterFromWindow(w window.Window) Filter {
	return Filter{Start: w.Start, End: w.End}
}

// IsZero reports whether the filter applies no constraint.
func (f Filter) IsZero() bool {
	return f.Start == nil && f.End == nil
}

// buildWindowClause renders the filter as an AND-chained predicate on
// the given column, returning the clause fragment and its arguments.
// The fragment is empty for an unconstrained filter. Bounds are
// inclusive on both sides, matching the window normalization.
func buildWindowClause(column string, f Filter) (string, []interface{}) {
	clause := ""
	args := make([]interface{}, 0, 2)

	if f.Start != nil {
		clause += fmt.Sprintf(" AND %s >= ?", column)
		args = append(args, *f.Start)
	}
	if f.End != nil {
		clause += fmt.Sprintf(" AND %s <= ?", column)
		args = append(args, *f.End)
	}
	return clause, args
}
