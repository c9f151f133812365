// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import (
	"context"

	"github.com/journeyscope/journeyscope/internal/models"
)

// fromSummary tries to serve a domain from the legacy pre-aggregated
// table. Only the overview domain has a summary shape; for every other
// domain (and whenever no row exists) it returns nil and the caller
// computes live. The normalized output uses the same schema as the
// live path, back-filling fields the summary cannot supply with zeros
// and empty arrays rather than failing.
func (a *Aggregator) fromSummary(ctx context.Context, domain Domain) (interface{}, error) {
	if domain != DomainOverview {
		return nil, nil
	}

	s, err := a.db.GetSummary(ctx, string(domain))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return summaryToOverview(s), nil
}

// summaryToOverview normalizes the legacy counts-only shape to the
// overview schema. Growth rates and trends are not derivable from the
// summary and stay at their zero defaults; the ratios are recomputed
// from the stored counts.
func summaryToOverview(s *models.AnalyticsSummary) *models.OverviewMetrics {
	return &models.OverviewMetrics{
		TotalUsers:       s.TotalUsers,
		ActiveUsers:      s.ActiveUsers,
		TotalJourneys:    s.TotalJourneys,
		ActiveJourneys:   s.ActiveJourneys,
		TotalComments:    s.TotalComments,
		TotalFriendships: s.TotalFriendships,

		AvgCommentsPerJourney: ratio(float64(s.TotalComments), float64(s.TotalJourneys)),
		AvgFriendsPerUser:     ratio(float64(s.TotalFriendships), float64(s.TotalUsers)),
		EngagementRate:        percentage(float64(s.ActiveUsers), float64(s.TotalUsers)),

		UserTrend:     []models.DailyCount{},
		JourneyTrend:  []models.DailyCount{},
		ActivityTrend: []models.DailyCount{},
	}
}
