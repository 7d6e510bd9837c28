package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type VehicleTypeSeed struct {
	VehicleTypeID int     `json:"vehicle_type_id"`
	Name          string  `json:"name"`
	Capacity      float64 `json:"capacity"`
	Count         int     `json:"count"`
}

type LocationSeed struct {
	LocationID int     `json:"location_id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Demand     float64 `json:"demand"`
	IsDepot    bool    `json:"is_depot"`
}

type SeedFile struct {
	VehicleTypes []VehicleTypeSeed `json:"vehicle_types"`
	Locations    []LocationSeed    `json:"locations"`
}

// Populate the database with fleet and location data from a JSON file.
// Existing rows with the same ids are overwritten so reseeding is safe.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fleet: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed fleet: parse json: %w", err)
	}

	for i, vt := range data.VehicleTypes {
		if vt.VehicleTypeID <= 0 {
			return fmt.Errorf("seed fleet: invalid vehicle_type_id at index %d: %d", i+1, vt.VehicleTypeID)
		}
		if strings.TrimSpace(vt.Name) == "" {
			return fmt.Errorf("seed fleet: vehicle type at index %d: name cannot be empty", i+1)
		}
		if vt.Capacity <= 0 {
			return fmt.Errorf("seed fleet: vehicle type %d: capacity must be positive", vt.VehicleTypeID)
		}
		if vt.Count <= 0 {
			return fmt.Errorf("seed fleet: vehicle type %d: count must be positive", vt.VehicleTypeID)
		}
	}

	for i, loc := range data.Locations {
		if loc.LocationID <= 0 {
			return fmt.Errorf("seed fleet: invalid location_id at index %d: %d", i+1, loc.LocationID)
		}
		if strings.TrimSpace(loc.Name) == "" {
			return fmt.Errorf("seed fleet: location at index %d: name cannot be empty", i+1)
		}
		if loc.Demand < 0 {
			return fmt.Errorf("seed fleet: location %d: demand cannot be negative", loc.LocationID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	vtQuery := `
	INSERT INTO vehicle_types (vehicle_type_id, name, capacity, count)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (vehicle_type_id) DO UPDATE
	SET name = EXCLUDED.name,
		capacity = EXCLUDED.capacity,
		count = EXCLUDED.count;
	`
	vtStmt, err := tx.Prepare(vtQuery)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare vehicle type insert: %w", err)
	}
	defer vtStmt.Close()

	for _, vt := range data.VehicleTypes {
		if _, err := vtStmt.Exec(vt.VehicleTypeID, vt.Name, vt.Capacity, vt.Count); err != nil {
			return fmt.Errorf("seed fleet: insert vehicle_type_id=%d: %w", vt.VehicleTypeID, err)
		}
	}

	locQuery := `
	INSERT INTO locations (location_id, name, latitude, longitude, demand, is_depot)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (location_id) DO UPDATE
	SET name = EXCLUDED.name,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		demand = EXCLUDED.demand,
		is_depot = EXCLUDED.is_depot;
	`
	locStmt, err := tx.Prepare(locQuery)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare location insert: %w", err)
	}
	defer locStmt.Close()

	for _, loc := range data.Locations {
		if _, err := locStmt.Exec(loc.LocationID, loc.Name, loc.Latitude, loc.Longitude, loc.Demand, loc.IsDepot); err != nil {
			return fmt.Errorf("seed fleet: insert location_id=%d: %w", loc.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}
