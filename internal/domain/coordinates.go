package domain

// Immutable geographic coordinates (longitude, latitude) in decimal degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}
