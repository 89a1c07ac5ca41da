package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"heritage-route-service/internal/api/dto"
)

func TestLocationsList(t *testing.T) {
	h := &LocationHandler{Catalog: &stubCatalog{locations: handlerLocations()}}

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Locations []dto.LocationResponse `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Locations, 4)
	require.Equal(t, "delhi", res.Locations[0].ID)
	require.Equal(t, []float64{28.6139, 77.2090}, res.Locations[0].Coordinates)
}

func TestLocationsListMethodNotAllowed(t *testing.T) {
	h := &LocationHandler{Catalog: &stubCatalog{}}

	req := httptest.NewRequest(http.MethodPost, "/locations", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "ok", res["status"])
}
