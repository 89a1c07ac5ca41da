package services

import (
	"context"
	"fmt"

	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/platform/obs"
	"heritage-route-service/internal/ports"
)

// PlanRouteRequest carries sanitized traveler preferences into the engine.
// Callers are expected to have parsed enums and clamped the day count via
// the domain helpers; the engine re-applies the defaults defensively.
type PlanRouteRequest struct {
	Interests        []string
	MaxTravelDays    int
	Budget           domain.BudgetTier
	Transport        domain.TransportMode
	StartLocationID  string
	StartCoordinates *domain.Coordinates
	Season           domain.Season
}

// PlanPersonalizedRoute runs the full planning pipeline: catalog -> interest
// filter -> path optimization -> itinerary build -> result assembly.
//
// All inputs are request-scoped and the computation is pure, so concurrent
// invocations need no locking. Recoverable conditions (unknown tiers, modes,
// coordinates) are absorbed with documented defaults; only ErrNoCandidates
// and ErrEmptyPath propagate.
func PlanPersonalizedRoute(
	ctx context.Context,
	req PlanRouteRequest,
	catalog ports.LocationCatalog,
	provider ports.DistanceProvider,
	costs *CostModel,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "services.PlanPersonalizedRoute")(&err)

	locations, err := catalog.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan route: list locations: %w", err)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("plan route: catalog is empty: %w", ErrNoCandidates)
	}

	maxDays := domain.ClampTravelDays(req.MaxTravelDays)

	startID := req.StartLocationID
	if startID == "" && req.StartCoordinates != nil {
		startID = nearestLocationID(locations, *req.StartCoordinates)
	}

	candidates := FilterByInterests(locations, req.Interests)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("plan route: %w", ErrNoCandidates)
	}

	// A start id outside the candidate set is still honored when the catalog
	// knows it: the location joins the candidates so the walk can begin there.
	if startID != "" && !containsLocation(candidates, startID) {
		if start, ok, lookupErr := catalog.GetLocation(ctx, startID); lookupErr == nil && ok {
			candidates = append(candidates, start)
		}
	}

	if req.Season != "" {
		candidates = OrderBySeason(candidates, req.Season)
	}

	path, err := OptimizePath(ctx, candidates, startID, maxDays, provider)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	days, totalCost, totalDays, err := BuildItinerary(ctx, path, req.Transport, req.Budget, provider, costs)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	itinerary, err := AssembleRoute(ctx, path, days, totalCost, totalDays, provider)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	return itinerary, nil
}

// nearestLocationID snaps a raw coordinate start to the closest catalog
// location by great-circle distance.
func nearestLocationID(locations []domain.Location, start domain.Coordinates) string {
	bestID := ""
	bestKm := -1
	for _, loc := range locations {
		if loc.Coordinates.IsZero() {
			continue
		}
		km := start.DistanceKm(loc.Coordinates)
		if bestKm < 0 || km < bestKm {
			bestKm = km
			bestID = loc.ID
		}
	}
	return bestID
}

func containsLocation(locations []domain.Location, id string) bool {
	for _, loc := range locations {
		if loc.ID == id {
			return true
		}
	}
	return false
}
