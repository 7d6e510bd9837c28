package solver

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"route-optimizer-service/internal/domain"
)

// Fingerprint digests one optimization input. The solver is deterministic,
// so two inputs with the same vehicle types and stops in the same order map
// to the same digest and a cached solution can be served without re-solving.
func Fingerprint(types []domain.VehicleType, stops []domain.Stop) string {
	h := sha256.New()

	enc := json.NewEncoder(h)
	_ = enc.Encode(types)
	_ = enc.Encode(stops)

	return hex.EncodeToString(h.Sum(nil))
}
