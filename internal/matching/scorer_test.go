package matching

import (
	"errors"
	"testing"
	"time"

	"gostaff/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestScorer() *Scorer {
	return NewScorer(DefaultConfig())
}

// createTestWorker builds a fully populated bartender in central Austin.
func createTestWorker() models.WorkerProfile {
	return models.WorkerProfile{
		ID:                   "worker-1",
		Skills:               []string{"bartending", "customer_service", "pos_systems"},
		Location:             &models.Coordinates{Latitude: 30.2672, Longitude: -97.7431},
		MaxTravelRadiusMiles: 30,
		Availability: map[string]bool{
			"monday": true, "tuesday": true, "friday": true, "saturday": true,
		},
		PreferredTimes:     []string{"afternoon", "night"},
		IndustryExperience: map[string]float64{"hospitality": 6, "retail": 1.5},
		Rating:             4.7,
	}
}

// createTestShift builds a Monday afternoon hospitality shift near the
// test worker (roughly half a mile away).
func createTestShift() models.ShiftRequirements {
	return models.ShiftRequirements{
		ID:             "shift-1",
		RequiredSkills: []string{"bartending", "customer_service"},
		Location:       &models.Coordinates{Latitude: 30.2700, Longitude: -97.7500},
		Date:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), // a Monday
		StartHour:      16,
		Industry:       "hospitality",
	}
}

func TestScore_PerfectMatch(t *testing.T) {
	scorer := createTestScorer()

	score, err := scorer.Score(createTestWorker(), createTestShift())
	require.NoError(t, err)

	assert.Equal(t, "worker-1", score.WorkerID)
	assert.Equal(t, "shift-1", score.ShiftID)
	assert.Equal(t, 40.0, score.SkillsScore)       // both required skills held
	assert.Equal(t, 25.0, score.LocationScore)     // under 5 miles
	assert.Equal(t, 20.0, score.AvailabilityScore) // Monday available, afternoon preferred
	assert.Equal(t, 10.0, score.IndustryScore)     // 6 years in hospitality
	assert.Equal(t, 5.0, score.RatingScore)        // 4.7 rating
	assert.Equal(t, 100.0, score.OverallScore)
}

func TestScore_MissingIdentity(t *testing.T) {
	scorer := createTestScorer()

	worker := createTestWorker()
	worker.ID = ""
	_, err := scorer.Score(worker, createTestShift())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidInput))

	shift := createTestShift()
	shift.ID = ""
	_, err = scorer.Score(createTestWorker(), shift)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestScore_SparseWorkerNeverErrors(t *testing.T) {
	scorer := createTestScorer()

	worker := models.WorkerProfile{ID: "worker-sparse"}
	shift := createTestShift()

	score, err := scorer.Score(worker, shift)
	require.NoError(t, err)

	// Documented floors: unavailable day 5, unknown industry via nil map 5,
	// unrated 1, missing worker coords 15, no required skill held 0.
	assert.Equal(t, 0.0, score.SkillsScore)
	assert.Equal(t, 15.0, score.LocationScore)
	assert.Equal(t, 5.0, score.AvailabilityScore)
	assert.Equal(t, 5.0, score.IndustryScore)
	assert.Equal(t, 1.0, score.RatingScore)
	assert.Equal(t, 26.0, score.OverallScore)
}

func TestScore_ObservedFloorIsEight(t *testing.T) {
	scorer := createTestScorer()

	// Worst observed-data case: worker holds none of the required skills,
	// lives beyond their radius, is unavailable, has experience but not in
	// this industry, and is unrated.
	worker := models.WorkerProfile{
		ID:                 "worker-floor",
		Skills:             []string{"plumbing"},
		Location:           &models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}, // NYC
		Availability:       map[string]bool{"sunday": true},
		IndustryExperience: map[string]float64{"construction": 10},
		Rating:             0,
	}
	shift := createTestShift() // Austin, Monday, hospitality

	score, err := scorer.Score(worker, shift)
	require.NoError(t, err)

	assert.Equal(t, 0.0, score.SkillsScore)
	assert.Equal(t, 0.0, score.LocationScore)
	assert.Equal(t, 5.0, score.AvailabilityScore)
	assert.Equal(t, 2.0, score.IndustryScore)
	assert.Equal(t, 1.0, score.RatingScore)
	assert.Equal(t, 8.0, score.OverallScore)
}

func TestScoreSkills(t *testing.T) {
	scorer := createTestScorer()

	tests := []struct {
		name     string
		worker   []string
		required []string
		expected float64
	}{
		{"no requirement is a perfect match", []string{}, nil, 40},
		{"no requirement regardless of worker skills", []string{"bartending"}, nil, 40},
		{"half the required skills", []string{"bartending"}, []string{"bartending", "customer_service"}, 20},
		{"all required skills", []string{"bartending", "customer_service"}, []string{"bartending", "customer_service"}, 40},
		{"extra skills earn no bonus", []string{"bartending", "customer_service", "cooking"}, []string{"bartending", "customer_service"}, 40},
		{"none of the required skills", []string{"cooking"}, []string{"bartending"}, 0},
		{"duplicate requirements count once", []string{"bartending"}, []string{"bartending", "bartending"}, 40},
		{"one of three", []string{"bartending"}, []string{"bartending", "cooking", "serving"}, 40.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorer.scoreSkills(tt.worker, tt.required), 1e-9)
		})
	}
}

func TestScoreLocation_DistanceBands(t *testing.T) {
	scorer := createTestScorer()

	shift := createTestShift()
	worker := createTestWorker()

	// One degree of latitude is about 69 miles; nudge the worker outward.
	tests := []struct {
		name      string
		latOffset float64
		radius    float64
		expected  float64
	}{
		{"within 5 miles", 0.01, 30, 25},
		{"within 10 miles", 0.10, 30, 20},
		{"within 25 miles", 0.30, 30, 15},
		{"within preferred radius", 0.40, 30, 10},
		{"beyond preferred radius", 0.50, 30, 0},
		{"default radius covers 28 miles when unset", 0.40, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker.Location = &models.Coordinates{
				Latitude:  shift.Location.Latitude + tt.latOffset,
				Longitude: shift.Location.Longitude,
			}
			worker.MaxTravelRadiusMiles = tt.radius
			assert.Equal(t, tt.expected, scorer.scoreLocation(worker, shift))
		})
	}
}

func TestScoreLocation_MissingCoordinatesIsNeutral(t *testing.T) {
	scorer := createTestScorer()

	worker := createTestWorker()
	shift := createTestShift()

	worker.Location = nil
	assert.Equal(t, 15.0, scorer.scoreLocation(worker, shift))

	worker = createTestWorker()
	shift.Location = nil
	assert.Equal(t, 15.0, scorer.scoreLocation(worker, shift))

	worker.Location = nil
	assert.Equal(t, 15.0, scorer.scoreLocation(worker, shift))
}

func TestScoreAvailability(t *testing.T) {
	scorer := createTestScorer()

	shift := createTestShift() // Monday, start hour 16 (afternoon)

	tests := []struct {
		name      string
		available map[string]bool
		preferred []string
		startHour int
		expected  float64
	}{
		{"available with matching preference", map[string]bool{"monday": true}, []string{"afternoon"}, 16, 20},
		{"available without matching preference", map[string]bool{"monday": true}, []string{"morning"}, 16, 15},
		{"available with no preferences at all", map[string]bool{"monday": true}, nil, 16, 15},
		{"marked unavailable", map[string]bool{"monday": false}, []string{"afternoon"}, 16, 5},
		{"day missing from map", map[string]bool{"tuesday": true}, []string{"afternoon"}, 16, 5},
		{"nil availability map", nil, []string{"afternoon"}, 16, 5},
		{"early morning start matches night preference", map[string]bool{"monday": true}, []string{"night"}, 3, 20},
		{"late start matches night preference", map[string]bool{"monday": true}, []string{"night"}, 23, 20},
		{"morning start matches morning preference", map[string]bool{"monday": true}, []string{"morning"}, 6, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker := createTestWorker()
			worker.Availability = tt.available
			worker.PreferredTimes = tt.preferred
			shift.StartHour = tt.startHour
			assert.Equal(t, tt.expected, scorer.scoreAvailability(worker, shift))
		})
	}
}

func TestScoreIndustry(t *testing.T) {
	scorer := createTestScorer()

	tests := []struct {
		name       string
		experience map[string]float64
		industry   string
		expected   float64
	}{
		{"no experience map is neutral", nil, "hospitality", 5},
		{"empty experience map is neutral", map[string]float64{}, "hospitality", 5},
		{"five or more years", map[string]float64{"hospitality": 5}, "hospitality", 10},
		{"two to five years", map[string]float64{"hospitality": 3}, "hospitality", 8},
		{"one to two years", map[string]float64{"hospitality": 1}, "hospitality", 6},
		{"under a year but present", map[string]float64{"hospitality": 0.4}, "hospitality", 4},
		{"industry absent from map", map[string]float64{"retail": 8}, "hospitality", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scorer.scoreIndustry(tt.experience, tt.industry))
		})
	}
}

func TestScoreRating(t *testing.T) {
	scorer := createTestScorer()

	tests := []struct {
		rating   float64
		expected float64
	}{
		{4.7, 5},
		{4.5, 5},
		{4.2, 4},
		{4.0, 4},
		{3.7, 3},
		{3.5, 3},
		{3.2, 2},
		{3.0, 2},
		{2.9, 1},
		{1.0, 1},
		{0, 1}, // unrated workers are never zeroed out
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, scorer.scoreRating(tt.rating))
	}
}

func TestScore_BoundsInvariant(t *testing.T) {
	scorer := createTestScorer()

	workers := []models.WorkerProfile{
		createTestWorker(),
		{ID: "w-empty"},
		{ID: "w-skills", Skills: []string{"bartending"}, Rating: 5},
		{
			ID:           "w-far",
			Location:     &models.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
			Availability: map[string]bool{"monday": true},
			Rating:       2.1,
		},
	}

	for _, worker := range workers {
		score, err := scorer.Score(worker, createTestShift())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, score.SkillsScore, 0.0)
		assert.LessOrEqual(t, score.SkillsScore, 40.0)
		assert.GreaterOrEqual(t, score.LocationScore, 0.0)
		assert.LessOrEqual(t, score.LocationScore, 25.0)
		assert.GreaterOrEqual(t, score.AvailabilityScore, 0.0)
		assert.LessOrEqual(t, score.AvailabilityScore, 20.0)
		assert.GreaterOrEqual(t, score.IndustryScore, 0.0)
		assert.LessOrEqual(t, score.IndustryScore, 10.0)
		assert.GreaterOrEqual(t, score.RatingScore, 0.0)
		assert.LessOrEqual(t, score.RatingScore, 5.0)
		assert.GreaterOrEqual(t, score.OverallScore, 0.0)
		assert.LessOrEqual(t, score.OverallScore, 100.0)
	}
}

func TestScore_OverallRoundedToTwoDecimals(t *testing.T) {
	scorer := createTestScorer()

	worker := createTestWorker()
	worker.Skills = []string{"bartending"}

	shift := createTestShift()
	shift.RequiredSkills = []string{"bartending", "cooking", "serving"}

	score, err := scorer.Score(worker, shift)
	require.NoError(t, err)

	// Skills contribute 40/3 = 13.333...; location 25, availability 20,
	// industry 10, rating 5. The rounded total carries exactly two decimals.
	assert.InDelta(t, 40.0/3, score.SkillsScore, 1e-9)
	assert.Equal(t, 73.33, score.OverallScore)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := createTestScorer()

	worker := createTestWorker()
	shift := createTestShift()

	first, err := scorer.Score(worker, shift)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := scorer.Score(worker, shift)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
