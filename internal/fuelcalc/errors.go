package fuelcalc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrValidation matches every ValidationError with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports an input rejected before any calculation runs.
type ValidationError struct {
	Field  string
	Value  float64
	Bounds Bounds
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Field + " " + e.Reason
	}
	return fmt.Sprintf("%s must be between %s and %s (got %s)",
		e.Field, formatNumber(e.Bounds.Min), formatNumber(e.Bounds.Max), formatNumber(e.Value))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Missing returns the error for an absent required field.
func Missing(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

// Invalid returns a validation error with a free-form reason.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// formatNumber prints v with the shortest representation that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
