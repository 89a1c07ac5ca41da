package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartLocationUnmarshalString(t *testing.T) {
	var req PlanRouteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"start_location": "delhi"}`), &req))
	require.NotNil(t, req.StartLocation)
	require.Equal(t, "delhi", req.StartLocation.ID)
	require.Nil(t, req.StartLocation.Coordinates)
}

func TestStartLocationUnmarshalObject(t *testing.T) {
	var req PlanRouteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"start_location": {"lat": 26.9, "lng": 75.8}}`), &req))
	require.NotNil(t, req.StartLocation)
	require.NotNil(t, req.StartLocation.Coordinates)
	require.Equal(t, 26.9, req.StartLocation.Coordinates.Lat)
	require.Equal(t, 75.8, req.StartLocation.Coordinates.Lng)
}

func TestStartLocationUnmarshalInvalid(t *testing.T) {
	var req PlanRouteRequest
	require.Error(t, json.Unmarshal([]byte(`{"start_location": [1, 2]}`), &req))
}
