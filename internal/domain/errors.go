package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks recoverable lookup misses (unknown location, no
	// pricing for a bedroom count).
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks rejected caller input (bad bedroom count,
	// non-positive or non-finite prices).
	ErrInvalidInput = errors.New("invalid input")
	// ErrDatasetNotFound is fatal at startup: the dataset collaborator is
	// missing or unreadable.
	ErrDatasetNotFound = errors.New("dataset not found")
	// ErrDatasetMalformed is fatal at startup: the dataset was read but a
	// required field is absent or inconsistent.
	ErrDatasetMalformed = errors.New("dataset malformed")
)

// LocationNotFoundError is returned when a location cannot be resolved. It
// carries every known location name so callers can present alternatives.
type LocationNotFoundError struct {
	Location  string
	Available []string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location %q not found", e.Location)
}

func (e *LocationNotFoundError) Unwrap() error { return ErrNotFound }

// Hint returns a short suggestion line for display.
func (e *LocationNotFoundError) Hint() string {
	return "Try: Lekki Phase 1, Yaba, Ikeja, Victoria Island, Ikoyi"
}

// InvalidBedroomsError is returned for bedroom counts outside the supported
// set. Distinct from PricingUnavailableError: it signals bad input, not an
// absent dataset entry.
type InvalidBedroomsError struct {
	Bedrooms int
}

func (e *InvalidBedroomsError) Error() string {
	return fmt.Sprintf("invalid bedrooms count: %d", e.Bedrooms)
}

func (e *InvalidBedroomsError) Unwrap() error { return ErrInvalidInput }

// Hint returns a short suggestion line for display.
func (e *InvalidBedroomsError) Hint() string {
	return "Supported: 1, 2, 3, or 4 bedrooms"
}

// PricingUnavailableError is returned when an area exists but has no pricing
// for the requested bedroom count. Available lists the counts it does have,
// sorted ascending.
type PricingUnavailableError struct {
	Location  string
	Bedrooms  int
	Available []int
}

func (e *PricingUnavailableError) Error() string {
	return fmt.Sprintf("no data for %d-bedroom in %s", e.Bedrooms, e.Location)
}

func (e *PricingUnavailableError) Unwrap() error { return ErrNotFound }

// InvalidPriceError is returned when a monetary input is non-positive or not
// a finite number.
type InvalidPriceError struct {
	Field string
	Value float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

func (e *InvalidPriceError) Unwrap() error { return ErrInvalidInput }
