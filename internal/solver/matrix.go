package solver

import "route-optimizer-service/internal/domain"

// DistanceMatrix holds the pairwise great-circle distances for one run,
// depot included. Built once up front so the merge loop never recomputes
// trigonometry.
type DistanceMatrix struct {
	index map[int]int // stop id -> row position
	dist  [][]float64
}

// BuildMatrix computes the full symmetric distance table for the given stops.
func BuildMatrix(stops []domain.Stop) *DistanceMatrix {
	n := len(stops)

	m := &DistanceMatrix{
		index: make(map[int]int, n),
		dist:  make([][]float64, n),
	}
	for i, s := range stops {
		m.index[s.StopID] = i
		m.dist[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := domain.HaversineKm(stops[i].Coord, stops[j].Coord)
			m.dist[i][j] = d
			m.dist[j][i] = d
		}
	}

	return m
}

// Between returns the distance in kilometers between two stops by id.
// Both ids must belong to the stop list the matrix was built from.
func (m *DistanceMatrix) Between(aID, bID int) float64 {
	return m.dist[m.index[aID]][m.index[bID]]
}
