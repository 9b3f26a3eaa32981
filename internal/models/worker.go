package models

// Coordinates is a plain lat/lng pair. Both match sides carry it as a
// pointer: nil means the party never shared a location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WorkerProfile is the worker-side half of a match calculation, precomputed
// by the caller from its worker record. Sparse fields are allowed everywhere
// except ID; the scorer degrades them to documented neutral defaults.
type WorkerProfile struct {
	ID       string       `json:"id" validate:"required"`
	Skills   []string     `json:"skills"`
	Location *Coordinates `json:"location"`

	// MaxTravelRadiusMiles of 0 means the worker never set one; the scorer
	// falls back to the configured default (50 miles).
	MaxTravelRadiusMiles float64 `json:"max_travel_radius_miles" validate:"min=0"`

	// Availability maps lowercase day names ("monday".."sunday") to whether
	// the worker marked that day as available.
	Availability map[string]bool `json:"availability"`

	// PreferredTimes holds time-of-day tags: "morning", "afternoon", "night".
	PreferredTimes []string `json:"preferred_times"`

	// IndustryExperience maps industry name to years worked in it.
	IndustryExperience map[string]float64 `json:"industry_experience"`

	// Rating is the worker's current average, 0 when unrated.
	Rating float64 `json:"rating" validate:"min=0,max=5"`
}
