package solver

import "route-optimizer-service/internal/domain"

// run owns the mutable route arena and vehicle-capacity bookkeeping for one
// optimization. Nothing here is shared across runs.
type run struct {
	depot   domain.Stop
	matrix  *DistanceMatrix
	pool    []domain.VehicleInstance
	routes  []*openRoute // arena; nil entries are merged-away tombstones
	routeOf map[int]int  // stop id -> index into routes
}

// openRoute is a route under construction: intermediate stops only, vehicle
// bound by pool index. The depot bookends are added when the run finishes.
type openRoute struct {
	vehicleIdx int
	stops      []domain.Stop
	distanceKm float64
	demand     float64
}

// buildInitialRoutes creates one depot→stop→depot round-trip per routable
// stop, in input order.
//
// The vehicle cursor is the stop index itself, not a count of successful
// assignments: a stop skipped for capacity still consumes one slot in
// vehicle-assignment order. A stop with no vehicle left, or whose demand
// exceeds the cursor vehicle's remaining capacity, receives no route and is
// never revisited by the merge pass.
func (r *run) buildInitialRoutes(stops []domain.Stop) {
	for cursor, s := range stops {
		if cursor >= len(r.pool) {
			continue
		}

		v := &r.pool[cursor]
		if s.Demand > v.Remaining {
			continue
		}
		v.Remaining -= s.Demand

		r.routeOf[s.StopID] = len(r.routes)
		r.routes = append(r.routes, &openRoute{
			vehicleIdx: cursor,
			stops:      []domain.Stop{s},
			distanceKm: 2 * r.matrix.Between(r.depot.StopID, s.StopID),
			demand:     s.Demand,
		})
	}
}
