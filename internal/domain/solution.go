package domain

// The output of one optimization run: the surviving routes and the sum of
// their distances. UnroutedStopIDs lists stops that received no route, either
// because no vehicle could carry their demand or because the fleet ran out.
// A Solution is immutable once produced; ownership passes to the caller.
type Solution struct {
	SolutionID      string
	Routes          []Route
	TotalDistanceKm float64
	UnroutedStopIDs []int
}
