package solver

import "route-optimizer-service/internal/domain"

// ExpandFleet flattens vehicle type definitions into an ordered pool of
// individual instances, each starting with full remaining capacity.
// Expansion follows the input type order, then unit index within a type;
// that order is the assignment priority in buildInitialRoutes, so
// earlier-listed types are saturated first.
func ExpandFleet(types []domain.VehicleType) []domain.VehicleInstance {
	pool := make([]domain.VehicleInstance, 0, len(types))

	for _, t := range types {
		for unit := 1; unit <= t.Count; unit++ {
			pool = append(pool, domain.VehicleInstance{
				VehicleTypeID: t.VehicleTypeID,
				Name:          t.Name,
				Unit:          unit,
				Capacity:      t.Capacity,
				Remaining:     t.Capacity,
			})
		}
	}

	return pool
}
