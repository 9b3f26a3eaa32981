package models

import "time"

// ShiftRequirements is the shift-side half of a match calculation.
type ShiftRequirements struct {
	ID string `json:"id" validate:"required"`

	// RequiredSkills may be empty: a shift with no skill requirement matches
	// every worker perfectly on the skills dimension.
	RequiredSkills []string     `json:"required_skills"`
	Location       *Coordinates `json:"location"`

	// Date is the calendar day the shift starts on; only its weekday is used.
	Date time.Time `json:"date"`

	// StartHour is the local starting hour, 0-23.
	StartHour int    `json:"start_hour" validate:"min=0,max=23"`
	Industry  string `json:"industry"`
}
