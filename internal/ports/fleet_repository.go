package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Port: a boundary for retrieving the vehicle fleet from a data source.
type FleetRepository interface {
	// Retrieve all vehicle types available for routing.
	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
}
