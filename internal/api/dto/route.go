package dto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PlanRouteRequest is the external preferences contract. Field names follow
// the published input contract; values outside range are clamped downstream
// rather than rejected here.
type PlanRouteRequest struct {
	Interests       []string       `json:"interests"`
	MaxTravelDays   int            `json:"max_travel_days"`
	BudgetRange     string         `json:"budget_range"`
	TransportMode   string         `json:"transport_mode"`
	StartLocation   *StartLocation `json:"start_location"`
	PreferredSeason string         `json:"preferred_season"`
}

// StartLocation accepts either a location id string or a {lat, lng} object.
type StartLocation struct {
	ID          string
	Coordinates *CoordinatePair
}

type CoordinatePair struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (s *StartLocation) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		s.ID = id
		return nil
	}

	var pair CoordinatePair
	if err := json.Unmarshal(data, &pair); err == nil {
		s.Coordinates = &pair
		return nil
	}

	return errors.New("start_location must be a location id or a {lat, lng} object")
}

func (s StartLocation) MarshalJSON() ([]byte, error) {
	if s.Coordinates != nil {
		return json.Marshal(s.Coordinates)
	}
	return json.Marshal(s.ID)
}

// Response shapes follow the published output contract (camelCase, as
// consumed by the map frontend).

type RouteLocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

type DayCostsResponse struct {
	Accommodation  int `json:"accommodation,omitempty"`
	Food           int `json:"food,omitempty"`
	LocalTransport int `json:"localTransport,omitempty"`
	Attractions    int `json:"attractions,omitempty"`
	Transport      int `json:"transport,omitempty"`
	Total          int `json:"total"`
}

type TravelDetailsResponse struct {
	Mode          string `json:"mode"`
	DistanceKm    int    `json:"distance"`
	DurationHours int    `json:"duration"`
	Description   string `json:"description"`
}

type ItineraryDayResponse struct {
	Day           int                    `json:"day"`
	Type          string                 `json:"type"`
	Location      string                 `json:"location"`
	Description   string                 `json:"description"`
	Highlights    []string               `json:"highlights,omitempty"`
	Costs         DayCostsResponse       `json:"costs"`
	TravelDetails *TravelDetailsResponse `json:"travelDetails,omitempty"`
}

type OptimizationMetricsResponse struct {
	TotalDistance     int    `json:"totalDistance"`
	CulturalDiversity int    `json:"culturalDiversity"`
	CostEfficiency    string `json:"costEfficiency"`
}

type RouteResponse struct {
	Path              []RouteLocationResponse     `json:"path"`
	DetailedItinerary []ItineraryDayResponse      `json:"detailedItinerary"`
	TotalCost         int                         `json:"totalCost"`
	TotalDays         int                         `json:"totalDays"`
	CulturalThemes    []string                    `json:"culturalThemes"`
	Metrics           OptimizationMetricsResponse `json:"optimizationMetrics"`
}

// Validate applies structural checks that cannot be recovered by clamping.
func (r *PlanRouteRequest) Validate() error {
	for i, interest := range r.Interests {
		if interest == "" {
			return fmt.Errorf("interests[%d] must be non-empty", i)
		}
	}
	return nil
}
