// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package models

import "time"

// DailyCount is one day of a time series, date formatted YYYY-MM-DD.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MonthlyCount is one month of a trend, month formatted YYYY-MM.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// GroupCount is a generic group-by result (gender, destination,
// country, city distributions).
type GroupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// OverviewMetrics is the overview domain response body.
type OverviewMetrics struct {
	TotalUsers       int `json:"total_users"`
	ActiveUsers      int `json:"active_users"`
	TotalJourneys    int `json:"total_journeys"`
	ActiveJourneys   int `json:"active_journeys"`
	TotalComments    int `json:"total_comments"`
	TotalFriendships int `json:"total_friendships"`

	// Growth rates compare the window to its equal-length predecessor;
	// 0 for all-time and open-ended windows.
	UserGrowthRate       float64 `json:"user_growth_rate"`
	JourneyGrowthRate    float64 `json:"journey_growth_rate"`
	EngagementGrowthRate float64 `json:"engagement_growth_rate"`

	AvgCommentsPerJourney float64 `json:"avg_comments_per_journey"`
	AvgFriendsPerUser     float64 `json:"avg_friends_per_user"`
	EngagementRate        float64 `json:"engagement_rate"`

	UserTrend     []DailyCount `json:"user_trend"`
	JourneyTrend  []DailyCount `json:"journey_trend"`
	ActivityTrend []DailyCount `json:"activity_trend"`
}

// UserAnalytics is the users domain response body.
type UserAnalytics struct {
	Demographics         UserDemographics `json:"user_demographics"`
	Activity             UserActivity     `json:"user_activity"`
	Retention            UserRetention    `json:"user_retention"`
	RegistrationTrend    []MonthlyCount   `json:"registration_trend"`
	ActivityDistribution []ActivityBucket `json:"activity_distribution"`
}

// UserDemographics covers totals and the gender breakdown.
type UserDemographics struct {
	TotalUsers      int          `json:"total_users"`
	ActiveUsers     int          `json:"active_users"`
	NewUsers        int          `json:"new_users"`
	GenderBreakdown []GroupCount `json:"gender_breakdown"`
}

// UserActivity covers per-user activity averages and the top-N ranking
// by activity score.
type UserActivity struct {
	AvgJourneysPerUser float64            `json:"avg_journeys_per_user"`
	AvgCommentsPerUser float64            `json:"avg_comments_per_user"`
	MostActiveUsers    []UserActivityRank `json:"most_active_users"`
}

// UserActivityRank is one row of the most-active ranking. Score is
// journeys + 0.5*comments within the window.
type UserActivityRank struct {
	UserID        string  `json:"user_id"`
	DisplayName   string  `json:"display_name"`
	JourneyCount  int     `json:"journey_count"`
	CommentCount  int     `json:"comment_count"`
	ActivityScore float64 `json:"activity_score"`
}

// UserRetention covers retention/churn against the preceding window.
type UserRetention struct {
	RetentionRate       float64 `json:"retention_rate"`
	ChurnRate           float64 `json:"churn_rate"`
	ReturningUsers      int     `json:"returning_users"`
	PreviousActiveUsers int     `json:"previous_active_users"`
}

// ActivityBucket is one band of the weekly-activity distribution.
// The three buckets always sum to the total user count.
type ActivityBucket struct {
	Bucket     string  `json:"bucket"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// JourneyAnalytics is the journeys domain response body.
type JourneyAnalytics struct {
	Overview             JourneyOverview   `json:"journey_overview"`
	Engagement           JourneyEngagement `json:"journey_engagement"`
	PopularDestinations  []GroupCount      `json:"popular_destinations"`
	CreationTrend        []MonthlyCount    `json:"creation_trend"`
	DurationDistribution []DurationBucket  `json:"duration_distribution"`
	TopCreators          []JourneyCreator  `json:"top_creators"`
}

// JourneyOverview covers journey counts and the mean duration.
type JourneyOverview struct {
	TotalJourneys     int     `json:"total_journeys"`
	ActiveJourneys    int     `json:"active_journeys"`
	CompletedJourneys int     `json:"completed_journeys"`
	AvgDurationDays   float64 `json:"avg_duration_days"`
}

// JourneyEngagement covers comment volume and the most-commented
// journeys ranking.
type JourneyEngagement struct {
	TotalComments         int                `json:"total_comments"`
	AvgCommentsPerJourney float64            `json:"avg_comments_per_journey"`
	MostCommented         []CommentedJourney `json:"most_commented"`
}

// CommentedJourney is one row of the most-commented ranking.
type CommentedJourney struct {
	JourneyID    string `json:"journey_id"`
	Title        string `json:"title"`
	CommentCount int    `json:"comment_count"`
}

// DurationBucket is one band of the duration histogram. Fixed
// boundaries at 0, 1, 3, 7, 14, 30, 90 and 365 days plus overflow.
type DurationBucket struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// JourneyCreator is one row of the top-creators ranking.
type JourneyCreator struct {
	UserID       string `json:"user_id"`
	DisplayName  string `json:"display_name"`
	JourneyCount int    `json:"journey_count"`
}

// GeographicAnalytics is the geographic domain response body.
type GeographicAnalytics struct {
	CountryDistribution []GroupCount       `json:"country_distribution"`
	CityDistribution    []GroupCount       `json:"city_distribution"`
	PopularDestinations []DestinationStats `json:"popular_destinations"`
	RegionalEngagement  []RegionEngagement `json:"regional_engagement"`
}

// DestinationStats is a destination with its journey count and, when
// the reference data knows it, coordinates and region.
type DestinationStats struct {
	Destination string   `json:"destination"`
	Count       int      `json:"count"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Region      string   `json:"region,omitempty"`
}

// RegionEngagement summarizes one region. PopularityScore is the
// region's journey count normalized against the busiest region (0-100).
type RegionEngagement struct {
	Region           string  `json:"region"`
	UserCount        int     `json:"user_count"`
	DestinationCount int     `json:"destination_count"`
	PopularityScore  float64 `json:"popularity_score"`
}

// SocialAnalytics is the social domain response body.
type SocialAnalytics struct {
	NetworkOverview  NetworkOverview     `json:"network_overview"`
	InfluentialUsers []InfluentialUser   `json:"influential_users"`
	RequestFunnel    FriendRequestFunnel `json:"request_funnel"`
	NetworkGraph     NetworkGraph        `json:"network_graph"`
}

// NetworkOverview covers friendship totals and network density.
// TotalFriendships is window-invariant; FriendshipsInWindow is only
// populated for bounded windows.
type NetworkOverview struct {
	TotalFriendships    int     `json:"total_friendships"`
	FriendshipsInWindow int     `json:"friendships_in_window,omitempty"`
	NetworkDensity      float64 `json:"network_density"`
	AvgFriendsPerUser   float64 `json:"avg_friends_per_user"`
}

// InfluentialUser is one row of the degree-based influence ranking.
type InfluentialUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Degree      int    `json:"degree"`
}

// FriendRequestFunnel summarizes the optional friend-request stream.
// An absent or empty stream yields all zeros, never an error.
type FriendRequestFunnel struct {
	TotalRequests    int     `json:"total_requests"`
	AcceptedRequests int     `json:"accepted_requests"`
	PendingRequests  int     `json:"pending_requests"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
}

// NetworkGraph is a bounded sample of the friendship graph for
// rendering. The sample is capped before degree computation, so the
// influence groups describe the sample, not the full graph.
type NetworkGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// GraphNode is one sampled user. InfluenceGroup is 0-4, assigned by
// thresholds at 20/40/60/80% of the max degree observed in the sample.
type GraphNode struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	Degree         int    `json:"degree"`
	InfluenceGroup int    `json:"influence_group"`
}

// GraphEdge is one sampled directed friendship edge.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// AnalyticsSummary is the legacy pre-aggregated shape, one row per
// domain. It can diverge from live computation, so it is only ever
// consulted for bare all-time requests.
type AnalyticsSummary struct {
	Domain           string    `json:"domain"`
	TotalUsers       int       `json:"total_users"`
	ActiveUsers      int       `json:"active_users"`
	TotalJourneys    int       `json:"total_journeys"`
	ActiveJourneys   int       `json:"active_journeys"`
	TotalComments    int       `json:"total_comments"`
	TotalFriendships int       `json:"total_friendships"`
	GeneratedAt      time.Time `json:"generated_at"`
}
