package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Port: a boundary for persisting computed solutions.
type SolutionStore interface {
	// Persist a finished solution under its id.
	SaveSolution(ctx context.Context, sol domain.Solution) error
}
