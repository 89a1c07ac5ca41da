package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"heritage-route-service/internal/domain"
)

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
}

// fetchMatrixRow retrieves distances from one origin to many destinations
// using the OpenRouteService matrix endpoint, converted to whole kilometers.
func (o *ORSDistanceProvider) fetchMatrixRow(
	ctx context.Context,
	from domain.Location,
	destinations []domain.Location,
) (map[string]int, error) {
	if len(destinations) == 0 {
		return map[string]int{}, nil
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, o.profile)

	// ORS expects [lon, lat] pairs with the origin first.
	locations := make([][]float64, 0, 1+len(destinations))
	locations = append(locations, []float64{from.Coordinates.Lng, from.Coordinates.Lat})
	for _, loc := range destinations {
		locations = append(locations, []float64{loc.Coordinates.Lng, loc.Coordinates.Lat})
	}

	destIdx := make([]int, 0, len(destinations))
	for i := 1; i < len(locations); i++ {
		destIdx = append(destIdx, i)
	}

	payload, err := json.Marshal(matrixRequest{
		Locations:    locations,
		Destinations: destIdx,
		Metrics:      []string{"distance"},
		Sources:      []int{0},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Distances) != 1 {
		return nil, fmt.Errorf("expected 1 source row; got %d", len(mr.Distances))
	}

	row := mr.Distances[0]
	if len(row) != len(destinations) {
		return nil, fmt.Errorf(
			"row length does not match destinations: distances=%d destinations=%d",
			len(row), len(destinations),
		)
	}

	out := make(map[string]int, len(destinations))
	for i, loc := range destinations {
		metersPtr := row[i]
		if metersPtr == nil {
			return nil, fmt.Errorf("matrix returned no distance for %q", loc.ID)
		}

		// ORS returns float meters; round to whole kilometers for domain consistency.
		out[loc.ID] = int(math.Round(*metersPtr / 1000))
	}

	return out, nil
}
