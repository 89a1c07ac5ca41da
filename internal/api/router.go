package api

import (
	"net/http"

	"heritage-route-service/internal/api/handlers"
	"heritage-route-service/internal/ports"
	"heritage-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(catalog ports.LocationCatalog, provider ports.DistanceProvider, costs *services.CostModel) http.Handler {
	mux := http.NewServeMux()

	locHandler := &handlers.LocationHandler{Catalog: catalog}
	routeHandler := &handlers.RouteHandler{
		Catalog:  catalog,
		Provider: provider,
		Costs:    costs,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locHandler.List)
	mux.HandleFunc("/routes/personalized", routeHandler.PlanPersonalized)

	return loggingMiddleware(mux)
}
