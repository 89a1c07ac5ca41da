package services

import (
	"fmt"
	"math"

	"heritage-route-service/internal/domain"
)

// Per-night / per-day prices for the three budget tiers, in INR.
type TierPrices struct {
	Low    int
	Medium int
	High   int
}

// ForTier selects the tier price; unknown tiers resolve to medium.
func (p TierPrices) ForTier(tier domain.BudgetTier) int {
	switch tier {
	case domain.BudgetLow:
		return p.Low
	case domain.BudgetHigh:
		return p.High
	default:
		return p.Medium
	}
}

// CostModel prices accommodation, food, local transport, attraction entry,
// and inter-city travel legs. It holds immutable configuration tables loaded
// once at construction and is safe for concurrent use.
type CostModel struct {
	accommodation        map[string]TierPrices
	defaultAccommodation TierPrices
	food                 TierPrices
	localTransportPerDay int
	attractions          map[string][]domain.Attraction
	defaultAttractions   []domain.Attraction
	perKmRates           map[domain.TransportMode]float64
	minLegCost           int
	mealSurcharge        int
}

// NewCostModel returns a cost model loaded with the curated pricing tables.
func NewCostModel() *CostModel {
	return &CostModel{
		accommodation:        accommodationCostsByLocation,
		defaultAccommodation: TierPrices{Low: 800, Medium: 2500, High: 6000},
		food:                 TierPrices{Low: 800, Medium: 1500, High: 3000},
		localTransportPerDay: 500,
		attractions:          attractionsByLocation,
		defaultAttractions: []domain.Attraction{
			{Name: "Main attraction", EntryCost: 100, Duration: "3 hours"},
			{Name: "Secondary site", EntryCost: 50, Duration: "2 hours"},
		},
		perKmRates: map[domain.TransportMode]float64{
			domain.TransportFlight: 3.5,
			domain.TransportTrain:  0.75,
			domain.TransportBus:    0.45,
			domain.TransportCar:    12,
		},
		minLegCost:    200,
		mealSurcharge: 300,
	}
}

// AccommodationCost returns the per-night price for a location and tier.
// Locations absent from the table use the default three-tier prices.
func (m *CostModel) AccommodationCost(locationID string, tier domain.BudgetTier) int {
	prices, ok := m.accommodation[locationID]
	if !ok {
		prices = m.defaultAccommodation
	}
	return prices.ForTier(tier)
}

// FoodCost returns the flat per-day food price for a tier, independent of
// location.
func (m *CostModel) FoodCost(tier domain.BudgetTier) int {
	return m.food.ForTier(tier)
}

// LocalTransportCost returns the fixed per-day local transport price.
func (m *CostModel) LocalTransportCost() int {
	return m.localTransportPerDay
}

// DayAttractions returns the attraction subset for one exploration day (two
// per day, indexed by the zero-based day at the location). Locations without
// a curated list get the generic placeholder list. Days past the end of the
// list get no attractions.
func (m *CostModel) DayAttractions(locationID string, dayIndex int) []domain.Attraction {
	list, ok := m.attractions[locationID]
	if !ok {
		list = m.defaultAttractions
	}

	start := dayIndex * 2
	if start >= len(list) {
		return nil
	}
	end := min(start+2, len(list))
	return list[start:end]
}

// AttractionsCost sums the entry prices of a day's attraction subset.
func (m *CostModel) AttractionsCost(attractions []domain.Attraction) int {
	total := 0
	for _, a := range attractions {
		total += a.EntryCost
	}
	return total
}

// TravelLeg prices an inter-city leg. Mixed mode selects an effective mode by
// distance thresholds (over 800 km flight, over 400 km train, else car);
// the cost is distance times the per-km rate, clamped to a minimum floor.
// Legs estimated over four hours add a fixed meal surcharge.
func (m *CostModel) TravelLeg(
	from, to domain.Location,
	distanceKm int,
	mode domain.TransportMode,
) (domain.TravelDetails, int, int) {
	effective := mode
	if mode == domain.TransportMixed {
		switch {
		case distanceKm > 800:
			effective = domain.TransportFlight
		case distanceKm > 400:
			effective = domain.TransportTrain
		default:
			effective = domain.TransportCar
		}
	}

	rate, ok := m.perKmRates[effective]
	if !ok {
		effective = domain.TransportCar
		rate = m.perKmRates[effective]
	}

	cost := int(math.Round(float64(distanceKm) * rate))
	if cost < m.minLegCost {
		cost = m.minLegCost
	}

	hours := legDurationHours(distanceKm, effective)
	meal := 0
	if hours > 4 {
		meal = m.mealSurcharge
	}

	details := domain.TravelDetails{
		Mode:          effective,
		DistanceKm:    distanceKm,
		DurationHours: hours,
		Description:   fmt.Sprintf("Travel from %s to %s via %s (%d km)", from.Name, to.Name, effective, distanceKm),
	}
	return details, cost, meal
}

// Estimated leg duration from average speeds per mode. Flights are a fixed
// block including airport time.
func legDurationHours(distanceKm int, mode domain.TransportMode) int {
	switch mode {
	case domain.TransportFlight:
		return 3
	case domain.TransportTrain:
		return ceilDiv(distanceKm, 60)
	case domain.TransportBus:
		return ceilDiv(distanceKm, 45)
	default:
		return ceilDiv(distanceKm, 50)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
