package utils

// Application Constants
const (
	AppName    = "GoStaff"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Matching Constants
	DefaultTravelRadiusMiles = 50.0
	MaxSkillsScore           = 40.0
	MaxLocationScore         = 25.0
	MaxAvailabilityScore     = 20.0
	MaxIndustryScore         = 10.0
	MaxRatingScore           = 5.0
	MaxOverallScore          = 100.0

	// Neutral scores awarded when optional match data is absent
	NeutralLocationScore = 15.0
	NeutralIndustryScore = 5.0

	// Location step thresholds (miles)
	VeryCloseDistanceMiles = 5.0
	CloseDistanceMiles     = 10.0
	NearbyDistanceMiles    = 25.0

	// Time-of-day bands (start hour inclusive, end hour exclusive)
	MorningStartHour   = 6
	AfternoonStartHour = 14
	NightStartHour     = 22

	// Worker Constants
	MinWorkerRating = 0.0
	MaxWorkerRating = 5.0

	// Geo Constants
	EarthRadiusKM    = 6371.0
	EarthRadiusMiles = 3959.0
)

// Time-of-day tags used in worker preferences.
const (
	TimeTagMorning   = "morning"
	TimeTagAfternoon = "afternoon"
	TimeTagNight     = "night"
)
