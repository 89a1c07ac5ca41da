package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"heritage-route-service/internal/api/dto"
	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/ports"
	"heritage-route-service/internal/services"
)

type RouteHandler struct {
	Catalog  ports.LocationCatalog
	Provider ports.DistanceProvider
	Costs    *services.CostModel
}

// PlanPersonalized accepts traveler preferences and returns a complete
// day-by-day itinerary. Out-of-range numeric inputs are clamped and unknown
// enum values fall back to documented defaults; only malformed bodies and
// empty candidate pools are rejected.
func (h *RouteHandler) PlanPersonalized(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq := services.PlanRouteRequest{
		Interests:     req.Interests,
		MaxTravelDays: req.MaxTravelDays,
		Budget:        domain.ParseBudgetTier(req.BudgetRange),
		Transport:     domain.ParseTransportMode(req.TransportMode),
		Season:        domain.ParseSeason(req.PreferredSeason),
	}
	if req.StartLocation != nil {
		if req.StartLocation.Coordinates != nil {
			svcReq.StartCoordinates = &domain.Coordinates{
				Lat: req.StartLocation.Coordinates.Lat,
				Lng: req.StartLocation.Coordinates.Lng,
			}
		} else {
			svcReq.StartLocationID = strings.TrimSpace(req.StartLocation.ID)
		}
	}

	itinerary, err := services.PlanPersonalizedRoute(r.Context(), svcReq, h.Catalog, h.Provider, h.Costs)
	if err != nil {
		if errors.Is(err, services.ErrNoCandidates) {
			writeError(w, r, http.StatusUnprocessableEntity, "no destinations match the requested preferences")
			return
		}
		log.Printf("plan personalized route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(itinerary))
}

func toRouteResponse(it *domain.Itinerary) dto.RouteResponse {
	path := make([]dto.RouteLocationResponse, 0, len(it.Path))
	for _, loc := range it.Path {
		path = append(path, dto.RouteLocationResponse{
			ID:          loc.ID,
			Name:        loc.Name,
			Coordinates: loc.Coordinates.ToPair(),
			Category:    loc.Category,
			Description: loc.Description,
		})
	}

	days := make([]dto.ItineraryDayResponse, 0, len(it.Days))
	for _, d := range it.Days {
		day := dto.ItineraryDayResponse{
			Day:         d.Day,
			Type:        string(d.Kind),
			Location:    d.Location,
			Description: d.Description,
			Highlights:  d.Highlights,
			Costs: dto.DayCostsResponse{
				Accommodation:  d.Costs.Accommodation,
				Food:           d.Costs.Food,
				LocalTransport: d.Costs.LocalTransport,
				Attractions:    d.Costs.Attractions,
				Transport:      d.Costs.Transport,
				Total:          d.Costs.Total,
			},
		}
		if d.Travel != nil {
			day.TravelDetails = &dto.TravelDetailsResponse{
				Mode:          string(d.Travel.Mode),
				DistanceKm:    d.Travel.DistanceKm,
				DurationHours: d.Travel.DurationHours,
				Description:   d.Travel.Description,
			}
		}
		days = append(days, day)
	}

	return dto.RouteResponse{
		Path:              path,
		DetailedItinerary: days,
		TotalCost:         it.TotalCost,
		TotalDays:         it.TotalDays,
		CulturalThemes:    it.CulturalThemes,
		Metrics: dto.OptimizationMetricsResponse{
			TotalDistance:     it.Metrics.TotalDistanceKm,
			CulturalDiversity: it.Metrics.CulturalDiversity,
			CostEfficiency:    it.Metrics.CostEfficiency,
		},
	}
}
