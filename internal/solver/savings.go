package solver

import (
	"slices"

	"route-optimizer-service/internal/domain"
)

// ComputeSavings builds the Clarke-Wright savings list for every unordered
// pair of distinct non-depot stops:
//
//	saving(i,j) = d(depot,i) + d(depot,j) - d(i,j)
//
// The result is sorted in descending order of saving. The sort is stable, so
// equal savings keep their pair enumeration order and repeated runs over the
// same input produce the same sequence.
func ComputeSavings(depot domain.Stop, stops []domain.Stop, m *DistanceMatrix) []domain.Saving {
	savings := make([]domain.Saving, 0, len(stops)*(len(stops)-1)/2)

	for i := 0; i < len(stops); i++ {
		for j := i + 1; j < len(stops); j++ {
			a, b := stops[i], stops[j]
			v := m.Between(depot.StopID, a.StopID) +
				m.Between(depot.StopID, b.StopID) -
				m.Between(a.StopID, b.StopID)

			savings = append(savings, domain.Saving{StopI: a.StopID, StopJ: b.StopID, Value: v})
		}
	}

	slices.SortStableFunc(savings, func(x, y domain.Saving) int {
		if x.Value > y.Value {
			return -1
		}
		if x.Value < y.Value {
			return 1
		}
		return 0
	})

	return savings
}
