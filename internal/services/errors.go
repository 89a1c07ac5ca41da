package services

import "errors"

var (
	// ErrNoCandidates is returned when interest filtering, after fallback
	// widening, still yields no locations. This is only possible when the
	// catalog itself is empty and is surfaced to the caller.
	ErrNoCandidates = errors.New("no candidate locations available")

	// ErrEmptyPath is returned when the optimizer or the itinerary builder
	// receives an empty path. It is an internal invariant violation and is
	// surfaced as a generic planning failure, never as a zero-day itinerary.
	ErrEmptyPath = errors.New("empty route path")
)
