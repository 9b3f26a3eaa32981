package validators

import (
	"gostaff/internal/models"
)

// ValidatePricingInput layers cross-field checks over tag validation for a
// shift pricing request arriving at the service boundary. The engine repeats
// the mandatory preconditions so it stays safe when called directly.
func ValidatePricingInput(input *models.ShiftPricingInput) ValidationErrors {
	errors := ValidateStruct(input)

	if !input.BaseHourlyRate.IsPositive() {
		errors = append(errors, ValidationError{
			Field:   "base_hourly_rate",
			Tag:     "gt",
			Value:   input.BaseHourlyRate.String(),
			Message: "Base hourly rate must be greater than zero",
		})
	}

	if input.DurationHours.IsNegative() {
		errors = append(errors, ValidationError{
			Field:   "duration_hours",
			Tag:     "min",
			Value:   input.DurationHours.String(),
			Message: "Duration must not be negative",
		})
	}

	if input.RequiredWorkers < 0 {
		errors = append(errors, ValidationError{
			Field:   "required_workers",
			Tag:     "min",
			Message: "Required workers must not be negative",
		})
	}

	if input.DemandSurge.IsNegative() {
		errors = append(errors, ValidationError{
			Field:   "demand_surge",
			Tag:     "min",
			Value:   input.DemandSurge.String(),
			Message: "Surge multiplier must not be negative",
		})
	}

	if input.EventSurge.IsNegative() {
		errors = append(errors, ValidationError{
			Field:   "event_surge",
			Tag:     "min",
			Value:   input.EventSurge.String(),
			Message: "Surge multiplier must not be negative",
		})
	}

	if input.PlatformFeeRatePercent.IsNegative() {
		errors = append(errors, ValidationError{
			Field:   "platform_fee_rate_percent",
			Tag:     "min",
			Value:   input.PlatformFeeRatePercent.String(),
			Message: "Rate must not be negative",
		})
	}

	if input.VATRatePercent.IsNegative() {
		errors = append(errors, ValidationError{
			Field:   "vat_rate_percent",
			Tag:     "min",
			Value:   input.VATRatePercent.String(),
			Message: "Rate must not be negative",
		})
	}

	if input.ContingencyBufferRatePercent.IsNegative() {
		errors = append(errors, ValidationError{
			Field:   "contingency_buffer_rate_percent",
			Tag:     "min",
			Value:   input.ContingencyBufferRatePercent.String(),
			Message: "Rate must not be negative",
		})
	}

	return errors
}
