package domain

// Kind of a single itinerary day.
type DayKind string

const (
	DayExploration DayKind = "exploration"
	DayTravel      DayKind = "travel"
)

// A priced point of interest visited during an exploration day.
type Attraction struct {
	Name      string
	EntryCost int
	Duration  string
}

// Per-day cost breakdown in whole currency units. Exploration days populate
// the first four fields; travel days populate Transport and Food (meal
// surcharge). Total is always the sum of the populated fields.
type DayCosts struct {
	Accommodation  int
	Food           int
	LocalTransport int
	Attractions    int
	Transport      int
	Total          int
}

// Details of an inter-city travel leg.
type TravelDetails struct {
	Mode          TransportMode
	DistanceKm    int
	DurationHours int
	Description   string
}

// A single day of the plan. Day numbers are 1-based and contiguous across
// the full itinerary, with no gaps or repeats.
type ItineraryDay struct {
	Day         int
	Kind        DayKind
	Location    string
	Description string
	Highlights  []string
	Costs       DayCosts
	Travel      *TravelDetails
}

// Derived summary scores over the final itinerary.
type OptimizationMetrics struct {
	TotalDistanceKm   int
	CulturalDiversity int
	CostEfficiency    string
}

// Represents the full day-numbered plan produced by the engine.
// An Itinerary is the output of a planning request and is immutable
// planning data: an ordered path of heritage sites, the expanded
// day-by-day schedule, and aggregate cost and quality metrics.
type Itinerary struct {
	Path           []Location
	Days           []ItineraryDay
	TotalCost      int
	TotalDays      int
	CulturalThemes []string
	Metrics        OptimizationMetrics
}
