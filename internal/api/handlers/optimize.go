package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/solver"
)

// OptimizeHandler runs one Clarke-Wright optimization over the stored fleet
// and locations. It coordinates repository access, the solution cache, the
// solver, and result persistence.
type OptimizeHandler struct {
	Fleet     ports.FleetRepository
	Locations ports.LocationRepository
	Store     ports.SolutionStore
	Cache     ports.SolutionCache
}

func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	req := dto.OptimizeRequest{}
	if r.ContentLength != 0 {
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
	}

	useCache := true
	if req.UseCache != nil {
		useCache = *req.UseCache
	}

	ctx := r.Context()

	types, err := h.Fleet.ListVehicleTypes(ctx)
	if err != nil {
		log.Printf("optimize: list vehicle types failed: %v", err)
		obs.OptimizeRuns.WithLabelValues("error").Inc()
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	stops, err := h.Locations.ListLocations(ctx)
	if err != nil {
		log.Printf("optimize: list locations failed: %v", err)
		obs.OptimizeRuns.WithLabelValues("error").Inc()
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	fingerprint := solver.Fingerprint(types, stops)

	if useCache && h.Cache != nil {
		cached, ok, err := h.Cache.Get(ctx, fingerprint)
		if err != nil {
			// A broken cache degrades to solving, never to failing the request.
			log.Printf("optimize: cache get failed: %v", err)
		}
		if ok {
			obs.OptimizeRuns.WithLabelValues("cache_hit").Inc()
			writeJSON(w, r, http.StatusOK, toSolutionResponse(*cached))
			return
		}
	}

	start := time.Now()
	sol := solver.Solve(types, stops)
	obs.OptimizeDuration.Observe(time.Since(start).Seconds())
	obs.RoutesPerSolution.Observe(float64(len(sol.Routes)))

	sol.SolutionID = uuid.NewString()

	if h.Store != nil {
		if err := h.Store.SaveSolution(ctx, sol); err != nil {
			log.Printf("optimize: save solution failed: %v", err)
			obs.OptimizeRuns.WithLabelValues("error").Inc()
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	if useCache && h.Cache != nil {
		if err := h.Cache.Put(ctx, fingerprint, sol); err != nil {
			log.Printf("optimize: cache put failed: %v", err)
		}
	}

	obs.OptimizeRuns.WithLabelValues("solved").Inc()
	writeJSON(w, r, http.StatusOK, toSolutionResponse(sol))
}

func toSolutionResponse(sol domain.Solution) dto.SolutionResponse {
	res := dto.SolutionResponse{
		SolutionID:          sol.SolutionID,
		Routes:              make([]dto.SolutionRouteResponse, 0, len(sol.Routes)),
		TotalDistanceKm:     sol.TotalDistanceKm,
		UnroutedLocationIDs: append([]int{}, sol.UnroutedStopIDs...),
	}

	for _, route := range sol.Routes {
		stops := make([]dto.SolutionStopResponse, 0, len(route.Stops))
		for _, rs := range route.Stops {
			stops = append(stops, dto.SolutionStopResponse{
				LocationID:   rs.Stop.StopID,
				LocationName: rs.Stop.Name,
				Latitude:     rs.Stop.Coord.Lat,
				Longitude:    rs.Stop.Coord.Lon,
				Demand:       rs.Stop.Demand,
				StopOrder:    rs.Order,
			})
		}

		res.Routes = append(res.Routes, dto.SolutionRouteResponse{
			VehicleID:       route.Vehicle.VehicleTypeID,
			VehicleName:     route.Vehicle.Name,
			TotalDistanceKm: route.TotalDistanceKm,
			TotalCapacity:   route.TotalDemand,
			Stops:           stops,
		})
	}

	return res
}
