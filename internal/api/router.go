package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"route-optimizer-service/internal/api/handlers"
	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil, in which case every optimize request is solved fresh.
func NewRouter(
	fleet ports.FleetRepository,
	locations ports.LocationRepository,
	store ports.SolutionStore,
	cache ports.SolutionCache,
) http.Handler {
	mux := http.NewServeMux()

	fleetHandler := &handlers.FleetHandler{Fleet: fleet, Locations: locations}
	optimizeHandler := &handlers.OptimizeHandler{
		Fleet:     fleet,
		Locations: locations,
		Store:     store,
		Cache:     cache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/vehicles", fleetHandler.ListVehicleTypes)
	mux.HandleFunc("/locations", fleetHandler.ListLocations)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
