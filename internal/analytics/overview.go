// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import (
	"context"

	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/models"
	"github.com/journeyscope/journeyscope/internal/window"
)

// Overview computes the overview domain: totals, growth rates against
// the preceding window, engagement ratios and the three daily trends.
func (a *Aggregator) Overview(ctx context.Context, w window.Window) (*models.OverviewMetrics, error) {
	f := database.FilterFromWindow(w)

	totalUsers, err := a.db.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	activeIDs, err := a.db.ActiveUserIDs(ctx, f)
	if err != nil {
		return nil, err
	}
	totalJourneys, err := a.db.CountJourneys(ctx, f)
	if err != nil {
		return nil, err
	}
	activeJourneys, err := a.db.CountActiveJourneys(ctx, f)
	if err != nil {
		return nil, err
	}
	totalComments, err := a.db.CountComments(ctx, f)
	if err != nil {
		return nil, err
	}
	totalFriendships, err := a.db.CountFriendships(ctx)
	if err != nil {
		return nil, err
	}

	m := &models.OverviewMetrics{
		TotalUsers:       totalUsers,
		ActiveUsers:      len(activeIDs),
		TotalJourneys:    totalJourneys,
		ActiveJourneys:   activeJourneys,
		TotalComments:    totalComments,
		TotalFriendships: totalFriendships,

		AvgCommentsPerJourney: ratio(float64(totalComments), float64(totalJourneys)),
		AvgFriendsPerUser:     ratio(float64(totalFriendships), float64(totalUsers)),
		EngagementRate:        percentage(float64(len(activeIDs)), float64(totalUsers)),
	}

	// Growth rates are only defined for fully bounded windows; the
	// zero values already in place cover all-time and open-ended ones.
	if prev, ok := window.Previous(w); ok {
		if err := a.fillGrowthRates(ctx, m, f, database.FilterFromWindow(prev), totalJourneys, totalComments); err != nil {
			return nil, err
		}
	}

	if err := a.fillTrends(ctx, m, f); err != nil {
		return nil, err
	}
	return m, nil
}

// fillGrowthRates compares new-entity counts in the current window with
// the equal-length preceding one.
func (a *Aggregator) fillGrowthRates(ctx context.Context, m *models.OverviewMetrics,
	cur, prev database.Filter, curJourneys, curComments int) error {

	curUsers, err := a.db.CountUsersCreated(ctx, cur)
	if err != nil {
		return err
	}
	prevUsers, err := a.db.CountUsersCreated(ctx, prev)
	if err != nil {
		return err
	}
	prevJourneys, err := a.db.CountJourneys(ctx, prev)
	if err != nil {
		return err
	}
	prevComments, err := a.db.CountComments(ctx, prev)
	if err != nil {
		return err
	}

	m.UserGrowthRate = growthRate(curUsers, prevUsers)
	m.JourneyGrowthRate = growthRate(curJourneys, prevJourneys)
	// Engagement is the combined journey and comment volume.
	m.EngagementGrowthRate = growthRate(curJourneys+curComments, prevJourneys+prevComments)
	return nil
}

// fillTrends loads the three daily series, bucketed by calendar day
// within the window or across full history for all-time.
func (a *Aggregator) fillTrends(ctx context.Context, m *models.OverviewMetrics, f database.Filter) error {
	userTrend, err := a.db.UserCreationsByDay(ctx, f)
	if err != nil {
		return err
	}
	journeyTrend, err := a.db.JourneyCreationsByDay(ctx, f)
	if err != nil {
		return err
	}
	activityTrend, err := a.db.ActivityByDay(ctx, f)
	if err != nil {
		return err
	}

	m.UserTrend = emptyIfNil(userTrend)
	m.JourneyTrend = emptyIfNil(journeyTrend)
	m.ActivityTrend = emptyIfNil(activityTrend)
	return nil
}

// emptyIfNil keeps trend arrays present (not null) in the JSON output.
func emptyIfNil(series []models.DailyCount) []models.DailyCount {
	if series == nil {
		return []models.DailyCount{}
	}
	return series
}
