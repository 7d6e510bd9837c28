package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Port: a boundary for retrieving delivery locations from a data source.
type LocationRepository interface {
	// Retrieve all stops available for routing, depot included.
	ListLocations(ctx context.Context) ([]domain.Stop, error)
}
