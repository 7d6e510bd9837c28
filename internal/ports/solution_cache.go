package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Port: a cache of computed solutions keyed by input fingerprint.
type SolutionCache interface {
	// Return the cached solution for a fingerprint; ok is false on a miss.
	Get(ctx context.Context, fingerprint string) (sol *domain.Solution, ok bool, err error)
	// Store a solution under a fingerprint.
	Put(ctx context.Context, fingerprint string, sol domain.Solution) error
}
