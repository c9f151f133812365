// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import (
	"context"

	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/geo"
	"github.com/journeyscope/journeyscope/internal/models"
	"github.com/journeyscope/journeyscope/internal/window"
)

// Geographic computes the geographic domain: user country/city
// distributions, destination popularity with coordinate lookup, and
// the per-region engagement summary.
func (a *Aggregator) Geographic(ctx context.Context, w window.Window, limit int) (*models.GeographicAnalytics, error) {
	f := database.FilterFromWindow(w)

	countries, err := a.db.UsersByCountry(ctx, f, limit)
	if err != nil {
		return nil, err
	}
	cities, err := a.db.UsersByCity(ctx, f, limit)
	if err != nil {
		return nil, err
	}
	topDestinations, err := a.db.DestinationCounts(ctx, f, limit)
	if err != nil {
		return nil, err
	}
	// The regional summary aggregates over every destination, not just
	// the top-N slice shown in the popularity table.
	allDestinations, err := a.db.DestinationCounts(ctx, f, 0)
	if err != nil {
		return nil, err
	}
	allCountries, err := a.db.UsersByCountry(ctx, f, 0)
	if err != nil {
		return nil, err
	}

	result := &models.GeographicAnalytics{
		CountryDistribution: countries,
		CityDistribution:    cities,
		PopularDestinations: annotateDestinations(topDestinations),
		RegionalEngagement:  buildRegionalEngagement(allDestinations, allCountries),
	}
	if result.CountryDistribution == nil {
		result.CountryDistribution = []models.GroupCount{}
	}
	if result.CityDistribution == nil {
		result.CityDistribution = []models.GroupCount{}
	}
	return result, nil
}

// annotateDestinations attaches coordinates and region from the
// reference data. Destinations outside the table keep only their name.
func annotateDestinations(counts []models.GroupCount) []models.DestinationStats {
	stats := make([]models.DestinationStats, len(counts))
	for i, c := range counts {
		stats[i] = models.DestinationStats{
			Destination: c.Value,
			Count:       c.Count,
		}
		if place, ok := geo.Lookup(c.Value); ok {
			lat, lon := place.Latitude, place.Longitude
			stats[i].Latitude = &lat
			stats[i].Longitude = &lon
			stats[i].Region = place.Region
		}
	}
	return stats
}

// buildRegionalEngagement rolls destination journey counts and user
// country counts up to regions. PopularityScore normalizes each
// region's journey volume against the busiest region.
func buildRegionalEngagement(destinations, countries []models.GroupCount) []models.RegionEngagement {
	journeysByRegion := make(map[string]int)
	destinationsByRegion := make(map[string]int)
	for _, d := range destinations {
		region := geo.RegionForDestination(d.Value)
		if region == "" {
			continue
		}
		journeysByRegion[region] += d.Count
		destinationsByRegion[region]++
	}

	usersByRegion := make(map[string]int)
	for _, c := range countries {
		region := geo.RegionForCountry(c.Value)
		if region == "" {
			continue
		}
		usersByRegion[region] += c.Count
	}

	maxJourneys := 0
	for _, count := range journeysByRegion {
		if count > maxJourneys {
			maxJourneys = count
		}
	}

	// Fixed region order keeps the summary stable across requests.
	var summary []models.RegionEngagement
	for _, region := range geo.Regions() {
		users := usersByRegion[region]
		dests := destinationsByRegion[region]
		if users == 0 && dests == 0 {
			continue
		}
		summary = append(summary, models.RegionEngagement{
			Region:           region,
			UserCount:        users,
			DestinationCount: dests,
			PopularityScore:  percentage(float64(journeysByRegion[region]), float64(maxJourneys)),
		})
	}
	if summary == nil {
		summary = []models.RegionEngagement{}
	}
	return summary
}
