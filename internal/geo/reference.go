// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

// Package geo ships the static reference data used by the geographic
// domain: coordinates and regions for well-known destinations, and a
// country-to-region mapping. The data is intentionally small; journeys
// to destinations outside the table are still reported by name, just
// without coordinates.
package geo

import "strings"

// Place is the reference record for a known destination.
type Place struct {
	Latitude  float64
	Longitude float64
	Region    string
}

// Region names used across the reference tables.
const (
	RegionEurope       = "Europe"
	RegionAsia         = "Asia"
	RegionNorthAmerica = "North America"
	RegionSouthAmerica = "South America"
	RegionAfrica       = "Africa"
	RegionOceania      = "Oceania"
	RegionMiddleEast   = "Middle East"
)

// destinations maps normalized destination names to coordinates.
var destinations = map[string]Place{
	"paris":          {48.8566, 2.3522, RegionEurope},
	"london":         {51.5074, -0.1278, RegionEurope},
	"rome":           {41.9028, 12.4964, RegionEurope},
	"barcelona":      {41.3851, 2.1734, RegionEurope},
	"amsterdam":      {52.3676, 4.9041, RegionEurope},
	"berlin":         {52.5200, 13.4050, RegionEurope},
	"prague":         {50.0755, 14.4378, RegionEurope},
	"vienna":         {48.2082, 16.3738, RegionEurope},
	"lisbon":         {38.7223, -9.1393, RegionEurope},
	"athens":         {37.9838, 23.7275, RegionEurope},
	"santorini":      {36.3932, 25.4615, RegionEurope},
	"reykjavik":      {64.1466, -21.9426, RegionEurope},
	"tokyo":          {35.6762, 139.6503, RegionAsia},
	"kyoto":          {35.0116, 135.7681, RegionAsia},
	"seoul":          {37.5665, 126.9780, RegionAsia},
	"bangkok":        {13.7563, 100.5018, RegionAsia},
	"singapore":      {1.3521, 103.8198, RegionAsia},
	"bali":           {-8.3405, 115.0920, RegionAsia},
	"hanoi":          {21.0285, 105.8542, RegionAsia},
	"kathmandu":      {27.7172, 85.3240, RegionAsia},
	"beijing":        {39.9042, 116.4074, RegionAsia},
	"mumbai":         {19.0760, 72.8777, RegionAsia},
	"new york":       {40.7128, -74.0060, RegionNorthAmerica},
	"san francisco":  {37.7749, -122.4194, RegionNorthAmerica},
	"vancouver":      {49.2827, -123.1207, RegionNorthAmerica},
	"mexico city":    {19.4326, -99.1332, RegionNorthAmerica},
	"toronto":        {43.6532, -79.3832, RegionNorthAmerica},
	"havana":         {23.1136, -82.3666, RegionNorthAmerica},
	"rio de janeiro": {-22.9068, -43.1729, RegionSouthAmerica},
	"buenos aires":   {-34.6037, -58.3816, RegionSouthAmerica},
	"lima":           {-12.0464, -77.0428, RegionSouthAmerica},
	"cusco":          {-13.5320, -71.9675, RegionSouthAmerica},
	"bogota":         {4.7110, -74.0721, RegionSouthAmerica},
	"cape town":      {-33.9249, 18.4241, RegionAfrica},
	"marrakech":      {31.6295, -7.9811, RegionAfrica},
	"cairo":          {30.0444, 31.2357, RegionAfrica},
	"nairobi":        {-1.2921, 36.8219, RegionAfrica},
	"sydney":         {-33.8688, 151.2093, RegionOceania},
	"auckland":       {-36.8509, 174.7645, RegionOceania},
	"queenstown":     {-45.0312, 168.6626, RegionOceania},
	"dubai":          {25.2048, 55.2708, RegionMiddleEast},
	"istanbul":       {41.0082, 28.9784, RegionMiddleEast},
	"petra":          {30.3285, 35.4444, RegionMiddleEast},
}

// countryRegions maps normalized country names to regions for the
// regional user counts.
var countryRegions = map[string]string{
	"france":         RegionEurope,
	"united kingdom": RegionEurope,
	"uk":             RegionEurope,
	"italy":          RegionEurope,
	"spain":          RegionEurope,
	"germany":        RegionEurope,
	"netherlands":    RegionEurope,
	"portugal":       RegionEurope,
	"greece":         RegionEurope,
	"iceland":        RegionEurope,
	"czechia":        RegionEurope,
	"austria":        RegionEurope,
	"denmark":        RegionEurope,
	"japan":          RegionAsia,
	"south korea":    RegionAsia,
	"thailand":       RegionAsia,
	"singapore":      RegionAsia,
	"indonesia":      RegionAsia,
	"vietnam":        RegionAsia,
	"nepal":          RegionAsia,
	"china":          RegionAsia,
	"india":          RegionAsia,
	"united states":  RegionNorthAmerica,
	"usa":            RegionNorthAmerica,
	"canada":         RegionNorthAmerica,
	"mexico":         RegionNorthAmerica,
	"cuba":           RegionNorthAmerica,
	"brazil":         RegionSouthAmerica,
	"argentina":      RegionSouthAmerica,
	"peru":           RegionSouthAmerica,
	"colombia":       RegionSouthAmerica,
	"south africa":   RegionAfrica,
	"morocco":        RegionAfrica,
	"egypt":          RegionAfrica,
	"kenya":          RegionAfrica,
	"australia":      RegionOceania,
	"new zealand":    RegionOceania,

	"united arab emirates": RegionMiddleEast,
	"turkey":               RegionMiddleEast,
	"jordan":               RegionMiddleEast,
}

// Normalize lowercases and trims a destination or country name for
// table lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the reference record for a destination name.
func Lookup(destination string) (Place, bool) {
	p, ok := destinations[Normalize(destination)]
	return p, ok
}

// RegionForDestination returns the region a destination belongs to, or
// "" when unknown.
func RegionForDestination(destination string) string {
	if p, ok := Lookup(destination); ok {
		return p.Region
	}
	return ""
}

// RegionForCountry returns the region a country belongs to, or ""
// when unknown.
func RegionForCountry(country string) string {
	return countryRegions[Normalize(country)]
}

// Regions returns every region name in the reference data, in a fixed
// display order.
func Regions() []string {
	return []string{
		RegionEurope,
		RegionAsia,
		RegionNorthAmerica,
		RegionSouthAmerica,
		RegionAfrica,
		RegionOceania,
		RegionMiddleEast,
	}
}
