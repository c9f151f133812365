// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import (
	"context"
	"sort"

	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/models"
	"github.com/journeyscope/journeyscope/internal/window"
)

// Activity distribution band labels and their weekly-rate boundaries.
const (
	bucketInactive = "Inactive (<1/week)"
	bucketMedium   = "Medium (1-3/week)"
	bucketActive   = "Active (>=3/week)"
)

// Users computes the users domain: demographics, activity averages and
// ranking, retention against the preceding window, the monthly
// registration trend and the weekly activity distribution.
func (a *Aggregator) Users(ctx context.Context, w window.Window, limit int) (*models.UserAnalytics, error) {
	f := database.FilterFromWindow(w)

	totalUsers, err := a.db.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	activeIDs, err := a.db.ActiveUserIDs(ctx, f)
	if err != nil {
		return nil, err
	}
	newUsers, err := a.countNewUsers(ctx, w)
	if err != nil {
		return nil, err
	}
	genders, err := a.db.GenderDistribution(ctx, f)
	if err != nil {
		return nil, err
	}

	counts, err := a.db.UserActivityCounts(ctx, f)
	if err != nil {
		return nil, err
	}

	retention, err := a.retention(ctx, w, activeIDs, totalUsers)
	if err != nil {
		return nil, err
	}

	trend, err := a.db.RegistrationsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	weeks, err := a.weeksFor(ctx, w)
	if err != nil {
		return nil, err
	}

	result := &models.UserAnalytics{
		Demographics: models.UserDemographics{
			TotalUsers:      totalUsers,
			ActiveUsers:     len(activeIDs),
			NewUsers:        newUsers,
			GenderBreakdown: genders,
		},
		Activity:             buildUserActivity(counts, totalUsers, limit),
		Retention:            retention,
		RegistrationTrend:    trend,
		ActivityDistribution: buildActivityDistribution(counts, weeks),
	}
	if result.Demographics.GenderBreakdown == nil {
		result.Demographics.GenderBreakdown = []models.GroupCount{}
	}
	if result.RegistrationTrend == nil {
		result.RegistrationTrend = []models.MonthlyCount{}
	}
	return result, nil
}

// countNewUsers counts registrations in the window; an all-time window
// defaults to the trailing 30 days so the card stays meaningful.
func (a *Aggregator) countNewUsers(ctx context.Context, w window.Window) (int, error) {
	if !w.IsAllTime() {
		return a.db.CountUsersCreated(ctx, database.FilterFromWindow(w))
	}
	recent, err := window.Resolve(window.PeriodLastMonth, a.now(), "", "")
	if err != nil {
		return 0, err
	}
	return a.db.CountUsersCreated(ctx, database.FilterFromWindow(recent))
}

// buildUserActivity derives the per-user averages (over all users, not
// just active ones) and the top-N ranking by activity score. Ties on
// score break by user id ascending so the ranking is stable.
func buildUserActivity(counts []database.UserActivityCount, totalUsers, limit int) models.UserActivity {
	totalJourneys, totalComments := 0, 0
	for _, c := range counts {
		totalJourneys += c.JourneyCount
		totalComments += c.CommentCount
	}

	ranked := make([]models.UserActivityRank, 0, len(counts))
	for _, c := range counts {
		if c.JourneyCount == 0 && c.CommentCount == 0 {
			continue
		}
		ranked = append(ranked, models.UserActivityRank{
			UserID:        c.UserID,
			DisplayName:   c.DisplayName(),
			JourneyCount:  c.JourneyCount,
			CommentCount:  c.CommentCount,
			ActivityScore: round2(float64(c.JourneyCount) + 0.5*float64(c.CommentCount)),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ActivityScore != ranked[j].ActivityScore {
			return ranked[i].ActivityScore > ranked[j].ActivityScore
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return models.UserActivity{
		AvgJourneysPerUser: ratio(float64(totalJourneys), float64(totalUsers)),
		AvgCommentsPerUser: ratio(float64(totalComments), float64(totalUsers)),
		MostActiveUsers:    ranked,
	}
}

// retention compares active-user sets between the window and its
// predecessor. When the predecessor has no active users (including
// unbounded windows, which have no predecessor at all), retention falls
// back to the engagement rate and churn reports 0.
func (a *Aggregator) retention(ctx context.Context, w window.Window, activeIDs []string, totalUsers int) (models.UserRetention, error) {
	prev, ok := window.Previous(w)
	if !ok {
		return models.UserRetention{
			RetentionRate: percentage(float64(len(activeIDs)), float64(totalUsers)),
		}, nil
	}

	prevIDs, err := a.db.ActiveUserIDs(ctx, database.FilterFromWindow(prev))
	if err != nil {
		return models.UserRetention{}, err
	}
	if len(prevIDs) == 0 {
		return models.UserRetention{
			RetentionRate: percentage(float64(len(activeIDs)), float64(totalUsers)),
		}, nil
	}

	current := make(map[string]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		current[id] = struct{}{}
	}
	returning := 0
	for _, id := range prevIDs {
		if _, ok := current[id]; ok {
			returning++
		}
	}

	// Churn is computed independently from the same counts; it is
	// algebraically the complement of retention when the previous
	// window had active users.
	return models.UserRetention{
		RetentionRate:       percentage(float64(returning), float64(len(prevIDs))),
		ChurnRate:           percentage(float64(len(prevIDs)-returning), float64(len(prevIDs))),
		ReturningUsers:      returning,
		PreviousActiveUsers: len(prevIDs),
	}, nil
}

// buildActivityDistribution classifies every user by weekly activity
// rate. The three buckets always sum to the total user count.
func buildActivityDistribution(counts []database.UserActivityCount, weeks float64) []models.ActivityBucket {
	if weeks <= 0 {
		weeks = 1
	}

	inactive, medium, active := 0, 0, 0
	for _, c := range counts {
		rate := float64(c.JourneyCount+c.CommentCount) / weeks
		switch {
		case rate >= 3:
			active++
		case rate >= 1:
			medium++
		default:
			inactive++
		}
	}

	total := len(counts)
	return []models.ActivityBucket{
		{Bucket: bucketInactive, Count: inactive, Percentage: percentage(float64(inactive), float64(total))},
		{Bucket: bucketMedium, Count: medium, Percentage: percentage(float64(medium), float64(total))},
		{Bucket: bucketActive, Count: active, Percentage: percentage(float64(active), float64(total))},
	}
}
