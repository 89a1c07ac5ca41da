package services

import (
	"context"
	"errors"
	"testing"

	"heritage-route-service/internal/adapters/distance"
	"heritage-route-service/internal/domain"
)

func TestBuildItineraryDayNumbering(t *testing.T) {
	path := []domain.Location{
		{ID: "delhi", Name: "Delhi", Description: "Capital region"},
		{ID: "khajuraho", Name: "Khajuraho Temples"},
	}
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "delhi", To: "khajuraho", Km: 620},
	})

	days, totalCost, totalDays, err := BuildItinerary(
		context.Background(), path, domain.TransportCar, domain.BudgetMedium, provider, NewCostModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// delhi stays 3 days, one travel day, khajuraho stays 2.
	if totalDays != 6 {
		t.Fatalf("totalDays = %d, want 6", totalDays)
	}
	if len(days) != 6 {
		t.Fatalf("len(days) = %d, want 6", len(days))
	}
	for i, d := range days {
		if d.Day != i+1 {
			t.Fatalf("day %d numbered %d; numbering must be contiguous from 1", i, d.Day)
		}
	}
	if days[3].Kind != domain.DayTravel {
		t.Fatalf("day 4 kind = %q, want travel", days[3].Kind)
	}
	if days[3].Travel == nil || days[3].Travel.DistanceKm != 620 {
		t.Fatalf("travel details missing or wrong: %+v", days[3].Travel)
	}

	sum := 0
	for _, d := range days {
		sum += d.Costs.Total
	}
	if sum != totalCost {
		t.Fatalf("totalCost = %d, sum of day totals = %d", totalCost, sum)
	}
}

func TestBuildItineraryExplorationDayCosts(t *testing.T) {
	path := []domain.Location{{ID: "varanasi", Name: "Varanasi"}}

	days, _, totalDays, err := BuildItinerary(
		context.Background(), path, domain.TransportCar, domain.BudgetLow,
		distance.NewMockDistanceProvider(nil), NewCostModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totalDays != 3 {
		t.Fatalf("varanasi stay = %d days, want 3", totalDays)
	}

	first := days[0]
	// 600 accommodation + 800 food + 500 local transport + 300 boat ride.
	if first.Costs.Accommodation != 600 || first.Costs.Food != 800 || first.Costs.LocalTransport != 500 {
		t.Fatalf("unexpected base costs: %+v", first.Costs)
	}
	if first.Costs.Attractions != 300 {
		t.Fatalf("attractions = %d, want 300", first.Costs.Attractions)
	}
	if first.Costs.Total != 2200 {
		t.Fatalf("day 1 total = %d, want 2200", first.Costs.Total)
	}
	if len(first.Highlights) != 2 || first.Highlights[0] != "Ganga Aarti ceremony" {
		t.Fatalf("highlights = %v", first.Highlights)
	}
}

func TestBuildItineraryEmptyPath(t *testing.T) {
	_, _, _, err := BuildItinerary(
		context.Background(), nil, domain.TransportCar, domain.BudgetMedium,
		distance.NewMockDistanceProvider(nil), NewCostModel())
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
}

func TestBuildItineraryTravelDayMeal(t *testing.T) {
	path := []domain.Location{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "a", To: "b", Km: 500},
	})

	days, _, _, err := BuildItinerary(
		context.Background(), path, domain.TransportCar, domain.BudgetMedium, provider, NewCostModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var travel *domain.ItineraryDay
	for i := range days {
		if days[i].Kind == domain.DayTravel {
			travel = &days[i]
			break
		}
	}
	if travel == nil {
		t.Fatal("no travel day in itinerary")
	}
	// 500 km by car: 6000 transport plus a 300 meal stop on the 10-hour leg.
	if travel.Costs.Transport != 6000 || travel.Costs.Food != 300 {
		t.Fatalf("travel day costs = %+v", travel.Costs)
	}
	if travel.Costs.Total != 6300 {
		t.Fatalf("travel day total = %d, want 6300", travel.Costs.Total)
	}
}
