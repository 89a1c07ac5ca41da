package ports

import (
	"context"

	"heritage-route-service/internal/domain"
)

// Contract for resolving the travel distance in whole kilometers between
// two catalog locations.
type DistanceProvider interface {
	// Return the distance between two locations. Calling with the same
	// location on both sides returns 0.
	Distance(ctx context.Context, from, to domain.Location) (int, error)
}

// Optional extension of DistanceProvider that supports batched lookups.
// Implementations backed by a matrix endpoint can resolve one origin against
// many destinations in a single call.
type DistanceMatrixProvider interface {
	DistanceProvider
	// Return distances from one origin to many destinations, keyed by
	// destination location id.
	Distances(ctx context.Context, from domain.Location, to []domain.Location) (map[string]int, error)
}
