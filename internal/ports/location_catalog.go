package ports

import (
	"context"

	"heritage-route-service/internal/domain"
)

// Port: a boundary for retrieving Location records from the catalog.
type LocationCatalog interface {
	// Retrieve all known locations in catalog order.
	ListLocations(ctx context.Context) ([]domain.Location, error)
	// Look up a single location by identifier. The boolean reports whether
	// the location exists.
	GetLocation(ctx context.Context, id string) (domain.Location, bool, error)
}
