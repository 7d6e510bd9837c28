package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-optimizer-service/internal/domain"
)

// Postgres-backed implementation of the FleetRepository port.
type PgFleetRepository struct{ DB *sql.DB }

func NewPgFleetRepository(db *sql.DB) *PgFleetRepository {
	return &PgFleetRepository{DB: db}
}

// Return all vehicle types stored in the database, in insertion id order so
// assignment priority is stable across runs.
func (s *PgFleetRepository) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	if s.DB == nil {
		return nil, errors.New("pg fleet repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_type_id,
		name,
		capacity,
		count
	FROM vehicle_types
	ORDER BY vehicle_type_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicle types: query vehicle_types table: %w", err)
	}
	defer rows.Close()

	types := make([]domain.VehicleType, 0, 16)
	for rows.Next() {
		var t domain.VehicleType
		if err := rows.Scan(&t.VehicleTypeID, &t.Name, &t.Capacity, &t.Count); err != nil {
			return nil, fmt.Errorf("list vehicle types: scan row: %w", err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicle types: row iteration: %w", err)
	}

	return types, nil
}
