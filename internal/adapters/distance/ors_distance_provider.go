package distance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/platform/obs"
	"heritage-route-service/internal/ports"
)

// ORSDistanceProvider implements DistanceProvider using the OpenRouteService
// matrix endpoint. Catalog locations already carry coordinates, so no
// geocoding step is needed.
//
// It coordinates:
//   - Persistent distance caching keyed by location id
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSDistanceProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	cache   ports.DistanceCache
}

func NewORSDistanceProvider(apiKey string, cache ports.DistanceCache) (*ORSDistanceProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSDistanceProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
		cache:   cache,
	}, nil
}

// Delegate to the batched path to reuse caching and matrix logic.
func (o *ORSDistanceProvider) Distance(ctx context.Context, from, to domain.Location) (int, error) {
	if from.ID == to.ID {
		return 0, nil
	}

	results, err := o.Distances(ctx, from, []domain.Location{to})
	if err != nil {
		return 0, fmt.Errorf("get distances %q -> %q: %w", from.ID, to.ID, err)
	}

	km, ok := results[to.ID]
	if !ok {
		return 0, fmt.Errorf("no distance result for %q -> %q", from.ID, to.ID)
	}
	return km, nil
}

// Distances resolves one origin against many destinations, checking the
// persistent cache before issuing a single matrix call for the misses.
func (o *ORSDistanceProvider) Distances(
	ctx context.Context,
	from domain.Location,
	to []domain.Location,
) (_ map[string]int, err error) {
	defer obs.Time(ctx, "ors.Distances")(&err)

	if from.Coordinates.IsZero() {
		return nil, fmt.Errorf("origin %q has no coordinates", from.ID)
	}

	seen := make(map[string]struct{}, len(to))
	destinations := make([]domain.Location, 0, len(to))
	for _, loc := range to {
		if loc.ID == from.ID {
			continue
		}
		if _, ok := seen[loc.ID]; ok {
			continue
		}
		seen[loc.ID] = struct{}{}
		destinations = append(destinations, loc)
	}

	if len(destinations) == 0 {
		return map[string]int{}, nil
	}

	hits := make(map[string]int)
	if o.cache != nil {
		ids := make([]string, 0, len(destinations))
		for _, loc := range destinations {
			ids = append(ids, loc.ID)
		}
		hits, err = o.cache.GetMany(ctx, from.ID, ids)
		if err != nil {
			return nil, fmt.Errorf("ORS distance cache read: %w", err)
		}
	}

	misses := make([]domain.Location, 0, len(destinations))
	for _, loc := range destinations {
		if _, ok := hits[loc.ID]; !ok {
			misses = append(misses, loc)
		}
	}

	if len(misses) == 0 {
		return hits, nil
	}

	for _, loc := range misses {
		if loc.Coordinates.IsZero() {
			return nil, fmt.Errorf("destination %q has no coordinates", loc.ID)
		}
	}

	fetched, err := o.fetchMatrixRow(ctx, from, misses)
	if err != nil {
		return nil, fmt.Errorf("fetching matrix row: %w", err)
	}

	for _, loc := range misses {
		if _, ok := fetched[loc.ID]; !ok {
			return nil, fmt.Errorf("ORS matrix did not return destination %q", loc.ID)
		}
	}

	if o.cache != nil {
		if err := o.cache.PutMany(ctx, from.ID, fetched); err != nil {
			log.Printf("distance cache write failed: %v", err)
		}
	}

	out := make(map[string]int, len(hits)+len(fetched))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fetched {
		out[k] = v
	}
	return out, nil
}
