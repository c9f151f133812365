// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import (
	"context"
	"fmt"

	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/models"
	"github.com/journeyscope/journeyscope/internal/window"
)

// durationBoundaries are the fixed histogram edges in days; durations
// at or past the last edge fall in the overflow bucket.
var durationBoundaries = []float64{1, 3, 7, 14, 30, 90, 365}

// Journeys computes the journeys domain: counts, durations, engagement,
// destination popularity, the monthly creation trend and the top
// creators ranking.
func (a *Aggregator) Journeys(ctx context.Context, w window.Window, limit int) (*models.JourneyAnalytics, error) {
	f := database.FilterFromWindow(w)

	totalJourneys, err := a.db.CountJourneys(ctx, f)
	if err != nil {
		return nil, err
	}
	activeJourneys, err := a.db.CountActiveJourneys(ctx, f)
	if err != nil {
		return nil, err
	}
	completedJourneys, err := a.db.CountCompletedJourneys(ctx, f, a.now())
	if err != nil {
		return nil, err
	}
	durations, err := a.db.JourneyDurationsDays(ctx, f)
	if err != nil {
		return nil, err
	}
	totalComments, err := a.db.CountComments(ctx, f)
	if err != nil {
		return nil, err
	}
	mostCommented, err := a.db.MostCommentedJourneys(ctx, f, limit)
	if err != nil {
		return nil, err
	}
	destinations, err := a.db.DestinationCounts(ctx, f, limit)
	if err != nil {
		return nil, err
	}
	trend, err := a.db.JourneysByMonth(ctx, f)
	if err != nil {
		return nil, err
	}
	creators, err := a.db.TopJourneyCreators(ctx, f, limit)
	if err != nil {
		return nil, err
	}

	// Untitled journeys get the short-id fallback label.
	for i := range mostCommented {
		if mostCommented[i].Title == "" {
			mostCommented[i].Title = "Journey " + models.ShortID(mostCommented[i].JourneyID)
		}
	}

	topCreators := make([]models.JourneyCreator, len(creators))
	for i, c := range creators {
		u := models.User{ID: c.UserID, Username: c.Username, FirstName: c.FirstName, LastName: c.LastName}
		topCreators[i] = models.JourneyCreator{
			UserID:       c.UserID,
			DisplayName:  u.DisplayName(),
			JourneyCount: c.JourneyCount,
		}
	}

	result := &models.JourneyAnalytics{
		Overview: models.JourneyOverview{
			TotalJourneys:     totalJourneys,
			ActiveJourneys:    activeJourneys,
			CompletedJourneys: completedJourneys,
			AvgDurationDays:   meanDuration(durations),
		},
		Engagement: models.JourneyEngagement{
			TotalComments:         totalComments,
			AvgCommentsPerJourney: ratio(float64(totalComments), float64(totalJourneys)),
			MostCommented:         mostCommented,
		},
		PopularDestinations:  destinations,
		CreationTrend:        trend,
		DurationDistribution: buildDurationHistogram(durations),
		TopCreators:          topCreators,
	}
	if result.Engagement.MostCommented == nil {
		result.Engagement.MostCommented = []models.CommentedJourney{}
	}
	if result.PopularDestinations == nil {
		result.PopularDestinations = []models.GroupCount{}
	}
	if result.CreationTrend == nil {
		result.CreationTrend = []models.MonthlyCount{}
	}
	return result, nil
}

// meanDuration averages journey durations, 0 for an empty slice.
func meanDuration(durations []float64) float64 {
	if len(durations) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range durations {
		sum += d
	}
	return round2(sum / float64(len(durations)))
}

// buildDurationHistogram buckets durations against the fixed
// boundaries, always emitting every bucket so charts stay aligned.
func buildDurationHistogram(durations []float64) []models.DurationBucket {
	buckets := make([]models.DurationBucket, len(durationBoundaries)+1)
	lower := 0.0
	for i, upper := range durationBoundaries {
		buckets[i].Bucket = fmt.Sprintf("%g-%g days", lower, upper)
		lower = upper
	}
	buckets[len(durationBoundaries)].Bucket = "365+ days"

	for _, d := range durations {
		placed := false
		for i, upper := range durationBoundaries {
			if d < upper {
				buckets[i].Count++
				placed = true
				break
			}
		}
		if !placed {
			buckets[len(durationBoundaries)].Count++
		}
	}
	return buckets
}
