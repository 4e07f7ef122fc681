package services

import (
	"errors"
	"fmt"
)

// ErrSlotTaken is returned when an active booking already holds the requested
// date, time slot, and package identity.
var ErrSlotTaken = errors.New("this time slot is already booked")

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PriceMismatchError is the validation failure for a total that does not match
// the service's computed price. It carries both values for the caller.
type PriceMismatchError struct {
	Expected float64
	Received float64
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("Price mismatch. Expected: %v, Received: %v", e.Expected, e.Received)
}
