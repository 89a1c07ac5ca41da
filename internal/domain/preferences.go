package domain

import "strings"

// Budget tier driving accommodation and food price lookups.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// ParseBudgetTier maps a raw string to a tier. Unknown values fall back to
// the documented default (medium) rather than failing.
func ParseBudgetTier(s string) BudgetTier {
	switch BudgetTier(strings.ToLower(strings.TrimSpace(s))) {
	case BudgetLow:
		return BudgetLow
	case BudgetHigh:
		return BudgetHigh
	default:
		return BudgetMedium
	}
}

// Preferred mode for inter-city travel legs.
type TransportMode string

const (
	TransportCar    TransportMode = "car"
	TransportTrain  TransportMode = "train"
	TransportBus    TransportMode = "bus"
	TransportFlight TransportMode = "flight"
	TransportMixed  TransportMode = "mixed"
)

// ParseTransportMode maps a raw string to a mode, defaulting unknown values
// to car.
func ParseTransportMode(s string) TransportMode {
	switch TransportMode(strings.ToLower(strings.TrimSpace(s))) {
	case TransportTrain:
		return TransportTrain
	case TransportBus:
		return TransportBus
	case TransportFlight:
		return TransportFlight
	case TransportMixed:
		return TransportMixed
	default:
		return TransportCar
	}
}

// Optional season hint used to reorder candidates before optimization.
type Season string

const (
	SeasonWinter  Season = "winter"
	SeasonSummer  Season = "summer"
	SeasonMonsoon Season = "monsoon"
)

// ParseSeason returns the matching season or empty when the hint is absent
// or unrecognized. An empty season disables seasonal ordering.
func ParseSeason(s string) Season {
	switch Season(strings.ToLower(strings.TrimSpace(s))) {
	case SeasonWinter:
		return SeasonWinter
	case SeasonSummer:
		return SeasonSummer
	case SeasonMonsoon:
		return SeasonMonsoon
	default:
		return ""
	}
}

const (
	DefaultMaxTravelDays = 7
	maxTravelDaysCap     = 60
)

// ClampTravelDays applies the input contract: zero means the default,
// out-of-range values are clamped rather than rejected.
func ClampTravelDays(days int) int {
	if days == 0 {
		return DefaultMaxTravelDays
	}
	if days < 1 {
		return 1
	}
	if days > maxTravelDaysCap {
		return maxTravelDaysCap
	}
	return days
}
