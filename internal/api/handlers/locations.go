package handlers

import (
	"log"
	"net/http"

	"heritage-route-service/internal/api/dto"
	"heritage-route-service/internal/ports"
)

// LocationHandler exposes read-only catalog retrieval endpoints.
type LocationHandler struct {
	Catalog ports.LocationCatalog
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locations, err := h.Catalog.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		res = append(res, dto.LocationResponse{
			ID:          loc.ID,
			Name:        loc.Name,
			Description: loc.Description,
			Category:    loc.Category,
			Period:      loc.Period,
			Dynasty:     loc.Dynasty,
			Coordinates: loc.Coordinates.ToPair(),
			Tags:        loc.Tags,
		})
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"locations": res})
}
