package distance

import (
	"context"

	"heritage-route-service/internal/domain"
)

// StaticResolver implements DistanceProvider from in-memory data only:
// a curated kilometer table with a great-circle fallback computed from the
// locations' own coordinates. It performs no I/O, never fails, and is safe
// for concurrent use.
type StaticResolver struct {
	table       map[string]map[string]int
	defaultCoor domain.Coordinates
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		table:       curatedDistancesKm,
		defaultCoor: defaultCoordinate,
	}
}

// Distance resolves a pair in lookup order: curated (a,b), curated (b,a),
// then haversine over coordinates. Identical ids return 0 without consulting
// the table. Missing coordinates substitute the default city coordinate.
func (r *StaticResolver) Distance(_ context.Context, from, to domain.Location) (int, error) {
	if from.ID == to.ID {
		return 0, nil
	}

	if row, ok := r.table[from.ID]; ok {
		if km, ok := row[to.ID]; ok {
			return km, nil
		}
	}
	if row, ok := r.table[to.ID]; ok {
		if km, ok := row[from.ID]; ok {
			return km, nil
		}
	}

	a := from.Coordinates
	if a.IsZero() {
		a = r.defaultCoor
	}
	b := to.Coordinates
	if b.IsZero() {
		b = r.defaultCoor
	}

	return a.DistanceKm(b), nil
}

// Distances resolves one origin against many destinations.
func (r *StaticResolver) Distances(
	ctx context.Context,
	from domain.Location,
	to []domain.Location,
) (map[string]int, error) {
	out := make(map[string]int, len(to))
	for _, loc := range to {
		km, err := r.Distance(ctx, from, loc)
		if err != nil {
			return nil, err
		}
		out[loc.ID] = km
	}
	return out, nil
}
