package domain

// Represents a single visit within a route. Order is the position in the
// route sequence, starting at 0 with the depot.
type RouteStop struct {
	Stop  Stop
	Order int
}

// Represents one planned vehicle route.
// Stops always begin and end with the depot; intermediate stops are never
// the depot. TotalDemand is the sum of non-depot stop demands and never
// exceeds the bound vehicle's capacity. It is immutable planning data and
// contains no side effects.
type Route struct {
	Vehicle         VehicleInstance
	Stops           []RouteStop
	TotalDistanceKm float64
	TotalDemand     float64
}

// The distance avoided by servicing StopI and StopJ on a single route
// instead of two separate depot round-trips.
type Saving struct {
	StopI int
	StopJ int
	Value float64
}
