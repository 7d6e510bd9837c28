package solver

import "route-optimizer-service/internal/domain"

// Solve runs one Clarke-Wright savings optimization over a fleet and a stop
// list.
//
// The algorithm starts from one depot round-trip per stop and greedily merges
// route pairs in descending savings order, subject to the bound vehicle's
// capacity. It is a deterministic single pass: identical input ordering
// yields an identical solution. With no vehicle instance or no non-depot
// stop the result is an empty route set, not an error; callers must check
// for an empty solution explicitly. Stops whose demand no vehicle can carry
// are silently omitted and reported in UnroutedStopIDs.
func Solve(types []domain.VehicleType, stops []domain.Stop) domain.Solution {
	sol := domain.Solution{Routes: []domain.Route{}}

	depot, ok := domain.ResolveDepot(stops)
	if !ok {
		return sol
	}

	customers := make([]domain.Stop, 0, len(stops))
	for _, s := range stops {
		if s.StopID != depot.StopID {
			customers = append(customers, s)
		}
	}

	pool := ExpandFleet(types)
	if len(customers) == 0 {
		return sol
	}
	if len(pool) == 0 {
		for _, s := range customers {
			sol.UnroutedStopIDs = append(sol.UnroutedStopIDs, s.StopID)
		}
		return sol
	}

	matrix := BuildMatrix(stops)
	savings := ComputeSavings(depot, customers, matrix)

	r := &run{
		depot:   depot,
		matrix:  matrix,
		pool:    pool,
		routeOf: make(map[int]int, len(customers)),
	}
	r.buildInitialRoutes(customers)
	r.mergeRoutes(savings)

	for _, rt := range r.routes {
		if rt == nil {
			continue
		}

		routeStops := make([]domain.RouteStop, 0, len(rt.stops)+2)
		routeStops = append(routeStops, domain.RouteStop{Stop: depot, Order: 0})
		for k, s := range rt.stops {
			routeStops = append(routeStops, domain.RouteStop{Stop: s, Order: k + 1})
		}
		routeStops = append(routeStops, domain.RouteStop{Stop: depot, Order: len(rt.stops) + 1})

		sol.Routes = append(sol.Routes, domain.Route{
			Vehicle:         r.pool[rt.vehicleIdx],
			Stops:           routeStops,
			TotalDistanceKm: rt.distanceKm,
			TotalDemand:     rt.demand,
		})
		sol.TotalDistanceKm += rt.distanceKm
	}

	for _, s := range customers {
		if _, routed := r.routeOf[s.StopID]; !routed {
			sol.UnroutedStopIDs = append(sol.UnroutedStopIDs, s.StopID)
		}
	}

	return sol
}
