package validators

import (
	"errors"
	"fmt"
	"strings"

	"gostaff/internal/models"
	"gostaff/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("urgency_level", validateUrgencyLevel)
	validate.RegisterValidation("rating_value", validateRatingValue)
	validate.RegisterValidation("day_name", validateDayName)
	validate.RegisterValidation("time_tag", validateTimeTag)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
}

// Common validation errors
var (
	ErrInvalidUrgencyLevel = errors.New("invalid urgency level")
	ErrInvalidRating       = errors.New("rating must be between 0.0 and 5.0")
	ErrInvalidDayName      = errors.New("invalid day name")
	ErrInvalidTimeTag      = errors.New("invalid time-of-day tag")
	ErrInvalidCurrency     = errors.New("invalid currency code")
	ErrInvalidCoordinates  = errors.New("invalid GPS coordinates")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "urgency_level":
		return "Urgency level must be normal, urgent, or critical"
	case "rating_value":
		return "Rating must be between 0.0 and 5.0"
	case "day_name":
		return "Invalid day name"
	case "time_tag":
		return "Time tag must be morning, afternoon, or night"
	case "currency_code":
		return "Invalid currency code"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validateUrgencyLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	return models.UrgencyLevel(value).IsValid()
}

func validateRatingValue(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return value >= utils.MinWorkerRating && value <= utils.MaxWorkerRating
}

func validateDayName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return utils.IsValidDayName(value)
}

func validateTimeTag(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return utils.IsValidTimeTag(value)
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return utils.ValidateCurrencyCode(value)
}

func validateCoordinates(coords *models.Coordinates) bool {
	if coords == nil {
		return true // Optional on both match sides
	}
	return coords.Latitude >= -90 && coords.Latitude <= 90 &&
		coords.Longitude >= -180 && coords.Longitude <= 180
}
