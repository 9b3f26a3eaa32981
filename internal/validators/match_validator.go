package validators

import (
	"gostaff/internal/models"
	"gostaff/internal/utils"
)

// ValidateWorkerProfile checks a worker-side match input. Sparse optional
// fields are fine; only malformed data is reported.
func ValidateWorkerProfile(worker *models.WorkerProfile) ValidationErrors {
	errors := ValidateStruct(worker)

	if !validateCoordinates(worker.Location) {
		errors = append(errors, ValidationError{
			Field:   "location",
			Tag:     "coordinates",
			Message: "Invalid GPS coordinates",
		})
	}

	for day := range worker.Availability {
		if !utils.IsValidDayName(day) {
			errors = append(errors, ValidationError{
				Field:   "availability",
				Tag:     "day_name",
				Value:   day,
				Message: "Invalid day name",
			})
		}
	}

	for _, tag := range worker.PreferredTimes {
		if !utils.IsValidTimeTag(tag) {
			errors = append(errors, ValidationError{
				Field:   "preferred_times",
				Tag:     "time_tag",
				Value:   tag,
				Message: "Time tag must be morning, afternoon, or night",
			})
		}
	}

	for industry, years := range worker.IndustryExperience {
		if years < 0 {
			errors = append(errors, ValidationError{
				Field:   "industry_experience",
				Tag:     "min",
				Value:   industry,
				Message: "Years of experience must not be negative",
			})
		}
	}

	return errors
}

// ValidateShiftRequirements checks a shift-side match input.
func ValidateShiftRequirements(shift *models.ShiftRequirements) ValidationErrors {
	errors := ValidateStruct(shift)

	if !validateCoordinates(shift.Location) {
		errors = append(errors, ValidationError{
			Field:   "location",
			Tag:     "coordinates",
			Message: "Invalid GPS coordinates",
		})
	}

	if shift.Date.IsZero() {
		errors = append(errors, ValidationError{
			Field:   "date",
			Tag:     "required",
			Message: "Shift date is required",
		})
	}

	return errors
}
