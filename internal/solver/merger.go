package solver

import "route-optimizer-service/internal/domain"

// mergeRoutes consumes the descending savings list exactly once, greedily
// combining the two routes that contain each saving's stops when capacity
// allows. It does not re-sort or revisit savings after a merge, so merges
// that only become profitable later are never reconsidered.
//
// Route membership is tracked in routeOf (stop id → arena index), updated on
// every merge, so each lookup is O(1) while producing the same outcomes as
// rescanning every route.
func (r *run) mergeRoutes(savings []domain.Saving) {
	for _, sv := range savings {
		i1, ok1 := r.routeOf[sv.StopI]
		i2, ok2 := r.routeOf[sv.StopJ]

		// A stop that never got an initial route has no entry here.
		if !ok1 || !ok2 {
			continue
		}
		if i1 == i2 {
			continue
		}

		r1, r2 := r.routes[i1], r.routes[i2]

		// Feasibility is gated on the receiving route's vehicle only; the
		// absorbed route's vehicle is orphaned and never returns to the pool.
		v := &r.pool[r1.vehicleIdx]
		if r1.demand+r2.demand > v.Capacity {
			continue
		}

		merged := &openRoute{
			vehicleIdx: r1.vehicleIdx,
			stops:      append(append(make([]domain.Stop, 0, len(r1.stops)+len(r2.stops)), r1.stops...), r2.stops...),
			demand:     r1.demand + r2.demand,
		}
		// Recompute from consecutive legs rather than subtracting the saving,
		// so floating error never compounds across merges.
		merged.distanceKm = r.legSum(merged.stops)

		v.Remaining = v.Capacity - merged.demand

		r.routes[i1] = merged
		r.routes[i2] = nil
		for _, s := range r2.stops {
			r.routeOf[s.StopID] = i1
		}
	}
}

// legSum totals the consecutive-stop distances along depot → stops → depot.
func (r *run) legSum(stops []domain.Stop) float64 {
	total := 0.0
	prev := r.depot.StopID
	for _, s := range stops {
		total += r.matrix.Between(prev, s.StopID)
		prev = s.StopID
	}
	return total + r.matrix.Between(prev, r.depot.StopID)
}
