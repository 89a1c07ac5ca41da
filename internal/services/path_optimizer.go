package services

import (
	"context"
	"fmt"
	"math"

	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/ports"
)

// Average days consumed per stop (exploration plus a share of travel), used
// to bound how many stops fit into the requested trip length.
const daysPerStopRatio = 1.5

// OptimizePath orders a candidate subset into a visiting sequence bounded by
// the trip length, using a greedy nearest-neighbor walk.
//
// The walk extends the path to the closest unvisited candidate at each step,
// breaking distance ties by candidate input order. It does not attempt a
// globally optimal tour; determinism and bounded time are preferred over
// optimality.
func OptimizePath(
	ctx context.Context,
	candidates []domain.Location,
	startID string,
	maxDays int,
	provider ports.DistanceProvider,
) ([]domain.Location, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("optimize path: %w", ErrNoCandidates)
	}

	maxStops := int(math.Floor(float64(maxDays) / daysPerStopRatio))
	if maxStops < 1 {
		maxStops = 1
	}
	if maxStops > len(candidates) {
		maxStops = len(candidates)
	}

	start := candidates[0]
	if startID != "" {
		for _, loc := range candidates {
			if loc.ID == startID {
				start = loc
				break
			}
		}
	}

	path := []domain.Location{start}
	remaining := make([]domain.Location, 0, len(candidates)-1)
	for _, loc := range candidates {
		if loc.ID != start.ID {
			remaining = append(remaining, loc)
		}
	}

	for len(path) < maxStops && len(remaining) > 0 {
		current := path[len(path)-1]

		distances, err := resolveDistances(ctx, provider, current, remaining)
		if err != nil {
			return nil, fmt.Errorf("optimize path: from %q: %w", current.ID, err)
		}

		// Greedy step: strict less-than keeps the earliest candidate on ties.
		bestIdx := -1
		bestDistance := math.MaxInt
		for i, loc := range remaining {
			d, ok := distances[loc.ID]
			if !ok {
				return nil, fmt.Errorf("optimize path: missing distance %q -> %q", current.ID, loc.ID)
			}
			if d < bestDistance {
				bestDistance = d
				bestIdx = i
			}
		}

		path = append(path, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return path, nil
}

// resolveDistances prefers a single batched lookup when the provider supports
// it, reducing external calls on cold caches.
func resolveDistances(
	ctx context.Context,
	provider ports.DistanceProvider,
	from domain.Location,
	to []domain.Location,
) (map[string]int, error) {
	if mp, ok := provider.(ports.DistanceMatrixProvider); ok {
		return mp.Distances(ctx, from, to)
	}

	out := make(map[string]int, len(to))
	for _, loc := range to {
		d, err := provider.Distance(ctx, from, loc)
		if err != nil {
			return nil, fmt.Errorf("get distance to %q: %w", loc.ID, err)
		}
		out[loc.ID] = d
	}
	return out, nil
}
