package matching

import (
	"math"

	"gostaff/internal/models"
	"gostaff/internal/utils"
)

// Config holds the tunable matching defaults.
type Config struct {
	DefaultTravelRadiusMiles float64 `json:"default_travel_radius_miles"`
}

// DefaultConfig returns the standard matching configuration.
func DefaultConfig() Config {
	return Config{
		DefaultTravelRadiusMiles: utils.DefaultTravelRadiusMiles,
	}
}

// Scorer computes the 0-100 compatibility score for a (worker, shift) pair
// across five weighted dimensions: skills (40), location (25), availability
// (20), industry experience (10), and rating (5). Sparse optional data
// degrades to neutral defaults instead of erroring; only a missing worker or
// shift ID is an error. The scorer is stateless and safe for concurrent use.
type Scorer struct {
	config Config
}

func NewScorer(config Config) *Scorer {
	if config.DefaultTravelRadiusMiles <= 0 {
		config.DefaultTravelRadiusMiles = utils.DefaultTravelRadiusMiles
	}
	return &Scorer{config: config}
}

// Score computes the match score for one worker/shift pair.
func (s *Scorer) Score(worker models.WorkerProfile, shift models.ShiftRequirements) (*models.MatchScore, error) {
	if worker.ID == "" {
		return nil, models.NewInvalidInput("worker.id", "is required")
	}
	if shift.ID == "" {
		return nil, models.NewInvalidInput("shift.id", "is required")
	}

	score := &models.MatchScore{
		WorkerID:          worker.ID,
		ShiftID:           shift.ID,
		SkillsScore:       s.scoreSkills(worker.Skills, shift.RequiredSkills),
		LocationScore:     s.scoreLocation(worker, shift),
		AvailabilityScore: s.scoreAvailability(worker, shift),
		IndustryScore:     s.scoreIndustry(worker.IndustryExperience, shift.Industry),
		RatingScore:       s.scoreRating(worker.Rating),
	}

	total := score.SkillsScore + score.LocationScore + score.AvailabilityScore +
		score.IndustryScore + score.RatingScore
	score.OverallScore = math.Round(total*100) / 100

	return score, nil
}

// scoreSkills awards up to 40 points for the share of required skills the
// worker holds. A shift with no requirements is a perfect match by
// convention. Extra worker skills earn no bonus.
func (s *Scorer) scoreSkills(workerSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return utils.MaxSkillsScore
	}

	held := make(map[string]bool, len(workerSkills))
	for _, skill := range workerSkills {
		held[skill] = true
	}

	required := make(map[string]bool, len(requiredSkills))
	matched := 0
	for _, skill := range requiredSkills {
		if required[skill] {
			continue
		}
		required[skill] = true
		if held[skill] {
			matched++
		}
	}

	return float64(matched) / float64(len(required)) * utils.MaxSkillsScore
}

// scoreLocation awards up to 25 points by distance band. Absent coordinates
// on either side score a neutral 15: missing data neither penalizes nor
// rewards.
func (s *Scorer) scoreLocation(worker models.WorkerProfile, shift models.ShiftRequirements) float64 {
	if worker.Location == nil || shift.Location == nil {
		return utils.NeutralLocationScore
	}

	distance := utils.DistanceMiles(
		worker.Location.Latitude, worker.Location.Longitude,
		shift.Location.Latitude, shift.Location.Longitude,
	)

	radius := worker.MaxTravelRadiusMiles
	if radius <= 0 {
		radius = s.config.DefaultTravelRadiusMiles
	}

	switch {
	case distance <= utils.VeryCloseDistanceMiles:
		return 25
	case distance <= utils.CloseDistanceMiles:
		return 20
	case distance <= utils.NearbyDistanceMiles:
		return 15
	case distance <= radius:
		return 10
	default:
		return 0
	}
}

// scoreAvailability awards up to 20 points. A day the worker never marked
// available still scores a floor of 5: absence of data is not a
// disqualifier. An available day scores 20 when the shift's start hour falls
// in one of the worker's preferred time-of-day bands, otherwise 15.
func (s *Scorer) scoreAvailability(worker models.WorkerProfile, shift models.ShiftRequirements) float64 {
	day := utils.DayName(shift.Date)
	if !worker.Availability[day] {
		return 5
	}

	tag := utils.TimeOfDayTag(shift.StartHour)
	for _, preferred := range worker.PreferredTimes {
		if preferred == tag {
			return 20
		}
	}
	return 15
}

// scoreIndustry awards up to 10 points tiered by years in the shift's
// industry. No experience map at all is neutral (5); an unknown industry
// still gets 2 as benefit of the doubt.
func (s *Scorer) scoreIndustry(experience map[string]float64, industry string) float64 {
	if len(experience) == 0 {
		return utils.NeutralIndustryScore
	}

	years, ok := experience[industry]
	if !ok {
		return 2
	}

	switch {
	case years >= 5:
		return 10
	case years >= 2:
		return 8
	case years >= 1:
		return 6
	default:
		return 4
	}
}

// scoreRating awards up to 5 points tiered by the worker's rating. An
// unrated worker (0) still receives 1 point so new workers are never fully
// zeroed out.
func (s *Scorer) scoreRating(rating float64) float64 {
	switch {
	case rating >= 4.5:
		return 5
	case rating >= 4.0:
		return 4
	case rating >= 3.5:
		return 3
	case rating >= 3.0:
		return 2
	default:
		return 1
	}
}
