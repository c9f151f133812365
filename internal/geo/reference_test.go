// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		wantRegion  string
		wantFound   bool
	}{
		{"exact match", "paris", RegionEurope, true},
		{"case insensitive", "PARIS", RegionEurope, true},
		{"surrounding whitespace", "  Tokyo  ", RegionAsia, true},
		{"multi-word destination", "New York", RegionNorthAmerica, true},
		{"unknown destination", "atlantis", "", false},
		{"empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Lookup(tt.destination)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantRegion, p.Region)
				assert.NotZero(t, p.Latitude)
				assert.NotZero(t, p.Longitude)
			}
		})
	}
}

func TestRegionForCountry(t *testing.T) {
	assert.Equal(t, RegionEurope, RegionForCountry("France"))
	assert.Equal(t, RegionAsia, RegionForCountry("japan"))
	assert.Equal(t, RegionNorthAmerica, RegionForCountry("USA"))
	assert.Equal(t, "", RegionForCountry("wakanda"))
}

func TestRegionsCoverReferenceData(t *testing.T) {
	regions := Regions()
	require.NotEmpty(t, regions)

	known := make(map[string]bool, len(regions))
	for _, r := range regions {
		known[r] = true
	}

	// Every destination and country in the tables must map into a
	// listed region, or the regional summary would drop rows.
	for name := range destinations {
		assert.True(t, known[destinations[name].Region], "destination %q has unlisted region", name)
	}
	for name, region := range countryRegions {
		assert.True(t, known[region], "country %q has unlisted region", name)
	}
}
