package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only failure kind the pricing and matching cores
// produce: a required field is missing, negative, or otherwise outside its
// domain. There is nothing to retry; the caller must fix the input.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports which field violated its precondition.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput builds a field-level InvalidInputError.
func NewInvalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
