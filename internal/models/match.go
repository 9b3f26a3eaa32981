package models

// MatchScore is the 0-100 compatibility signal for one (worker, shift) pair.
// Sub-scores are independently bounded: skills <=40, location <=25,
// availability <=20, industry <=10, rating <=5. It is computed fresh on every
// call and used only for ranking, never persisted as authoritative state.
type MatchScore struct {
	WorkerID          string  `json:"worker_id"`
	ShiftID           string  `json:"shift_id"`
	SkillsScore       float64 `json:"skills_score"`
	LocationScore     float64 `json:"location_score"`
	AvailabilityScore float64 `json:"availability_score"`
	IndustryScore     float64 `json:"industry_score"`
	RatingScore       float64 `json:"rating_score"`
	OverallScore      float64 `json:"overall_score"`
}

// RankedShift pairs a shift with its score for one worker.
type RankedShift struct {
	Shift ShiftRequirements `json:"shift"`
	Score MatchScore        `json:"score"`
}

// RankedWorker pairs a worker with their score for one shift.
type RankedWorker struct {
	Worker WorkerProfile `json:"worker"`
	Score  MatchScore    `json:"score"`
}
