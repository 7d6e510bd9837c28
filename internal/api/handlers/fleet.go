package handlers

import (
	"log"
	"net/http"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/ports"
)

// FleetHandler exposes read-only fleet and location retrieval endpoints.
type FleetHandler struct {
	Fleet     ports.FleetRepository
	Locations ports.LocationRepository
}

func (h *FleetHandler) ListVehicleTypes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	types, err := h.Fleet.ListVehicleTypes(r.Context())
	if err != nil {
		log.Printf("list vehicle types failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehicleTypesResponse{
		VehicleTypes: make([]dto.VehicleTypeResponse, 0, len(types)),
	}
	for _, t := range types {
		res.VehicleTypes = append(res.VehicleTypes, dto.VehicleTypeResponse{
			VehicleTypeID: t.VehicleTypeID,
			Name:          t.Name,
			Capacity:      t.Capacity,
			Count:         t.Count,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *FleetHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	stops, err := h.Locations.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Locations = append(res.Locations, dto.LocationResponse{
			LocationID: s.StopID,
			Name:       s.Name,
			Latitude:   s.Coord.Lat,
			Longitude:  s.Coord.Lon,
			Demand:     s.Demand,
			IsDepot:    s.IsDepot,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
