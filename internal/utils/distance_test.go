package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles_KnownPairs(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{"same point", 30.2672, -97.7431, 30.2672, -97.7431, 0, 0.001},
		{"new york to los angeles", 40.7128, -74.0060, 34.0522, -118.2437, 2445, 10},
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 213, 3},
		{"austin downtown to airport", 30.2672, -97.7431, 30.1975, -97.6664, 6.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := DistanceMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, distance, tt.tolerance)
		})
	}
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	forward := DistanceMiles(30.2672, -97.7431, 40.7128, -74.0060)
	backward := DistanceMiles(40.7128, -74.0060, 30.2672, -97.7431)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestDistanceKM_MatchesMilesRatio(t *testing.T) {
	miles := DistanceMiles(30.2672, -97.7431, 40.7128, -74.0060)
	km := DistanceKM(30.2672, -97.7431, 40.7128, -74.0060)
	assert.InDelta(t, EarthRadiusKM/EarthRadiusMiles, km/miles, 1e-9)
}

func TestIsWithinRadiusMiles(t *testing.T) {
	// Austin downtown to airport is about 6.5 miles.
	assert.True(t, IsWithinRadiusMiles(30.2672, -97.7431, 30.1975, -97.6664, 10))
	assert.False(t, IsWithinRadiusMiles(30.2672, -97.7431, 30.1975, -97.6664, 5))
}
