package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

// Postgres-backed implementation of the SolutionStore port. Solutions are
// written once and never updated.
type PgSolutionStore struct{ DB *sql.DB }

func NewPgSolutionStore(db *sql.DB) *PgSolutionStore {
	return &PgSolutionStore{DB: db}
}

// Persist a finished solution as a JSONB payload keyed by solution id.
func (s *PgSolutionStore) SaveSolution(ctx context.Context, sol domain.Solution) (err error) {
	defer obs.Time(ctx, "solutions.Save")(&err)

	if s.DB == nil {
		return errors.New("pg solution store: DB is nil")
	}

	if sol.SolutionID == "" {
		return errors.New("save solution: solution id must not be empty")
	}

	payload, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("save solution: encode payload: %w", err)
	}

	query := `
	INSERT INTO solutions (solution_id, payload, total_distance_km)
	VALUES ($1, $2, $3);
	`
	if _, err := s.DB.ExecContext(ctx, query, sol.SolutionID, payload, sol.TotalDistanceKm); err != nil {
		return fmt.Errorf("save solution: insert solution_id=%s: %w", sol.SolutionID, err)
	}

	return nil
}
