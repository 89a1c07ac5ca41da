package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"heritage-route-service/internal/adapters/distance"
	"heritage-route-service/internal/api/dto"
	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/services"
)

type stubCatalog struct {
	locations []domain.Location
}

func (c *stubCatalog) ListLocations(_ context.Context) ([]domain.Location, error) {
	return c.locations, nil
}

func (c *stubCatalog) GetLocation(_ context.Context, id string) (domain.Location, bool, error) {
	for _, loc := range c.locations {
		if loc.ID == id {
			return loc, true, nil
		}
	}
	return domain.Location{}, false, nil
}

func newRouteHandler(locations []domain.Location) *RouteHandler {
	return &RouteHandler{
		Catalog:  &stubCatalog{locations: locations},
		Provider: distance.NewStaticResolver(),
		Costs:    services.NewCostModel(),
	}
}

func handlerLocations() []domain.Location {
	return []domain.Location{
		{ID: "delhi", Name: "Delhi", Category: "historical", Dynasty: "Mughal Empire",
			Coordinates: domain.Coordinates{Lat: 28.6139, Lng: 77.2090}, Tags: []string{"Mughal"}},
		{ID: "taj-mahal", Name: "Taj Mahal", Category: "cultural", Dynasty: "Mughal Empire",
			Coordinates: domain.Coordinates{Lat: 27.1751, Lng: 78.0421}, Tags: []string{"UNESCO Heritage"}},
		{ID: "jaipur", Name: "Jaipur", Category: "historical", Dynasty: "Kachwaha Rajputs",
			Coordinates: domain.Coordinates{Lat: 26.9124, Lng: 75.7873}, Tags: []string{"Rajput"}},
		{ID: "varanasi", Name: "Varanasi", Category: "religious", Dynasty: "Various Hindu kingdoms",
			Coordinates: domain.Coordinates{Lat: 25.3176, Lng: 82.9739}, Tags: []string{"Ganges"}},
	}
}

func TestPlanPersonalizedSuccess(t *testing.T) {
	h := newRouteHandler(handlerLocations())

	body := `{
		"interests": ["historical"],
		"max_travel_days": 7,
		"budget_range": "medium",
		"transport_mode": "car",
		"start_location": "delhi"
	}`
	req := httptest.NewRequest(http.MethodPost, "/routes/personalized", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.PlanPersonalized(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Path)
	require.Equal(t, "delhi", res.Path[0].ID)
	require.NotEmpty(t, res.DetailedItinerary)
	require.Equal(t, 1, res.DetailedItinerary[0].Day)
	require.Positive(t, res.TotalCost)
	require.Positive(t, res.TotalDays)
	require.NotEmpty(t, res.CulturalThemes)
	require.Contains(t, []string{"High", "Medium", "Low"}, res.Metrics.CostEfficiency)
}

func TestPlanPersonalizedCoordinateStart(t *testing.T) {
	h := newRouteHandler(handlerLocations())

	body := `{
		"max_travel_days": 3,
		"start_location": {"lat": 26.90, "lng": 75.80}
	}`
	req := httptest.NewRequest(http.MethodPost, "/routes/personalized", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.PlanPersonalized(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "jaipur", res.Path[0].ID)
}

func TestPlanPersonalizedDefaultsApplied(t *testing.T) {
	h := newRouteHandler(handlerLocations())

	// Empty body object: all preferences take their defaults.
	req := httptest.NewRequest(http.MethodPost, "/routes/personalized", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.PlanPersonalized(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Path)
}

func TestPlanPersonalizedBadRequests(t *testing.T) {
	h := newRouteHandler(handlerLocations())

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"interests": [`},
		{"unknown field", `{"interest_list": ["historical"]}`},
		{"trailing object", `{"interests": ["historical"]}{"interests": []}`},
		{"bad start location type", `{"start_location": 42}`},
		{"empty interest", `{"interests": [""]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/routes/personalized", strings.NewReader(c.body))
			rec := httptest.NewRecorder()

			h.PlanPersonalized(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPlanPersonalizedEmptyCatalog(t *testing.T) {
	h := newRouteHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/routes/personalized", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.PlanPersonalized(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlanPersonalizedMethodNotAllowed(t *testing.T) {
	h := newRouteHandler(handlerLocations())

	req := httptest.NewRequest(http.MethodGet, "/routes/personalized", nil)
	rec := httptest.NewRecorder()

	h.PlanPersonalized(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}
