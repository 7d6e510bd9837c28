package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-optimizer-service/internal/domain"
)

// Postgres-backed implementation of the LocationRepository port.
type PgLocationRepository struct{ DB *sql.DB }

func NewPgLocationRepository(db *sql.DB) *PgLocationRepository {
	return &PgLocationRepository{DB: db}
}

// Return all locations stored in the database in insertion id order. The
// depot flag is carried through; depot selection itself happens in the
// solver, once per run.
func (s *PgLocationRepository) ListLocations(ctx context.Context) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("pg location repository: DB is nil")
	}

	query := `
	SELECT
		location_id,
		name,
		latitude,
		longitude,
		demand,
		is_depot
	FROM locations
	ORDER BY location_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Stop, 0, 64)
	for rows.Next() {
		var stop domain.Stop
		if err := rows.Scan(&stop.StopID, &stop.Name, &stop.Coord.Lat, &stop.Coord.Lon, &stop.Demand, &stop.IsDepot); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		stops = append(stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return stops, nil
}
