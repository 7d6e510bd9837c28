package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVehicleTypesQuery := `
	CREATE TABLE IF NOT EXISTS vehicle_types (
		vehicle_type_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		capacity DOUBLE PRECISION NOT NULL CHECK (capacity > 0),
		count INTEGER NOT NULL CHECK (count > 0)
	);
	`

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		demand DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (demand >= 0),
		is_depot BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createSolutionsQuery := `
	CREATE TABLE IF NOT EXISTS solutions (
		solution_id TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		total_distance_km DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_solutions_created_at
	ON solutions(created_at);
	`

	statements := []string{
		createVehicleTypesQuery,
		createLocationsQuery,
		createSolutionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
