package ports

import "context"

// Port: persistent cache for origin->destination distances fetched from a
// remote routing collaborator. Keys are location identifiers.
type DistanceCache interface {
	// Fetch cached kilometer distances for one origin and many destinations.
	// Missing pairs are simply absent from the result.
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]int, error)
	// Store kilometer distances for a single origin.
	PutMany(ctx context.Context, origin string, distancesKm map[string]int) error
}
