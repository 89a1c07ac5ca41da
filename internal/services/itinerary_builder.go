package services

import (
	"context"
	"fmt"

	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/ports"
)

// Destinations with large multi-site complexes warrant a longer stay. This is
// a curated classification, not a formula; everything else gets the default.
var explorationDaysByLocation = map[string]int{
	"delhi":    3,
	"varanasi": 3,
	"hampi":    3,
	"jaipur":   3,
	"udaipur":  3,
}

const defaultExplorationDays = 2

func explorationDaysFor(locationID string) int {
	if days, ok := explorationDaysByLocation[locationID]; ok {
		return days
	}
	return defaultExplorationDays
}

// BuildItinerary expands an ordered path into day-numbered exploration and
// travel entries and returns the entries together with the total cost and
// total day count.
//
// The builder is a pure fold over the path: each location contributes its
// exploration days, then one travel day to the next location if one exists.
// Day numbers increase strictly by one starting at 1.
func BuildItinerary(
	ctx context.Context,
	path []domain.Location,
	mode domain.TransportMode,
	tier domain.BudgetTier,
	provider ports.DistanceProvider,
	costs *CostModel,
) ([]domain.ItineraryDay, int, int, error) {
	if len(path) == 0 {
		return nil, 0, 0, fmt.Errorf("build itinerary: %w", ErrEmptyPath)
	}

	days := make([]domain.ItineraryDay, 0, 3*len(path))
	currentDay := 1
	totalCost := 0

	for i, loc := range path {
		stay := explorationDaysFor(loc.ID)

		for d := 0; d < stay; d++ {
			attractions := costs.DayAttractions(loc.ID, d)
			attractionCost := costs.AttractionsCost(attractions)

			dayCosts := domain.DayCosts{
				Accommodation:  costs.AccommodationCost(loc.ID, tier),
				Food:           costs.FoodCost(tier),
				LocalTransport: costs.LocalTransportCost(),
				Attractions:    attractionCost,
			}
			dayCosts.Total = dayCosts.Accommodation + dayCosts.Food + dayCosts.LocalTransport + dayCosts.Attractions

			highlights := make([]string, 0, len(attractions))
			for _, a := range attractions {
				highlights = append(highlights, a.Name)
			}

			description := fmt.Sprintf("Explore %s", loc.Name)
			if d == 0 && loc.Description != "" {
				description = fmt.Sprintf("Arrive and explore %s. %s", loc.Name, loc.Description)
			}

			days = append(days, domain.ItineraryDay{
				Day:         currentDay,
				Kind:        domain.DayExploration,
				Location:    loc.Name,
				Description: description,
				Highlights:  highlights,
				Costs:       dayCosts,
			})
			totalCost += dayCosts.Total
			currentDay++
		}

		if i+1 >= len(path) {
			continue
		}
		next := path[i+1]

		distanceKm, err := provider.Distance(ctx, loc, next)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("build itinerary: distance %q -> %q: %w", loc.ID, next.ID, err)
		}

		travel, transportCost, mealCost := costs.TravelLeg(loc, next, distanceKm, mode)
		dayCosts := domain.DayCosts{
			Transport: transportCost,
			Food:      mealCost,
			Total:     transportCost + mealCost,
		}

		days = append(days, domain.ItineraryDay{
			Day:         currentDay,
			Kind:        domain.DayTravel,
			Location:    fmt.Sprintf("%s to %s", loc.Name, next.Name),
			Description: travel.Description,
			Costs:       dayCosts,
			Travel:      &travel,
		})
		totalCost += dayCosts.Total
		currentDay++
	}

	return days, totalCost, currentDay - 1, nil
}
