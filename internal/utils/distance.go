package utils

import (
	"math"
)

// DistanceMiles returns the great-circle distance between two points in miles.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return haversineDistance(lat1, lon1, lat2, lon2, EarthRadiusMiles)
}

// DistanceKM returns the great-circle distance between two points in kilometers.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	return haversineDistance(lat1, lon1, lat2, lon2, EarthRadiusKM)
}

func haversineDistance(lat1, lon1, lat2, lon2, radius float64) float64 {
	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	// Differences
	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	// Haversine formula
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}

// IsWithinRadiusMiles reports whether a point lies within radiusMiles of a center.
func IsWithinRadiusMiles(centerLat, centerLon, pointLat, pointLon, radiusMiles float64) bool {
	return DistanceMiles(centerLat, centerLon, pointLat, pointLon) <= radiusMiles
}
