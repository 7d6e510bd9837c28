package domain

// Represents a single geocoded delivery point handled by the system.
// Exactly one stop per optimization run acts as the depot; depot demand is
// conventionally zero and is not counted against vehicle capacity.
type Stop struct {
	StopID  int
	Name    string
	Coord   Coordinates
	Demand  float64
	IsDepot bool
}

// ResolveDepot picks the depot for a run: the first stop flagged IsDepot,
// else the first stop in the list. ok is false when stops is empty.
func ResolveDepot(stops []Stop) (depot Stop, ok bool) {
	if len(stops) == 0 {
		return Stop{}, false
	}

	for _, s := range stops {
		if s.IsDepot {
			return s, true
		}
	}

	return stops[0], true
}
