package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
)

type stubFleetRepo struct{ types []domain.VehicleType }

func (s *stubFleetRepo) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	return s.types, nil
}

type stubLocationRepo struct{ stops []domain.Stop }

func (s *stubLocationRepo) ListLocations(ctx context.Context) ([]domain.Stop, error) {
	return s.stops, nil
}

type stubSolutionStore struct{ saved []domain.Solution }

func (s *stubSolutionStore) SaveSolution(ctx context.Context, sol domain.Solution) error {
	s.saved = append(s.saved, sol)
	return nil
}

type stubSolutionCache struct {
	entries map[string]domain.Solution
	puts    int
}

func (s *stubSolutionCache) Get(ctx context.Context, fingerprint string) (*domain.Solution, bool, error) {
	sol, ok := s.entries[fingerprint]
	if !ok {
		return nil, false, nil
	}
	return &sol, true, nil
}

func (s *stubSolutionCache) Put(ctx context.Context, fingerprint string, sol domain.Solution) error {
	s.entries[fingerprint] = sol
	s.puts++
	return nil
}

func newOptimizeHandler() (*OptimizeHandler, *stubSolutionStore, *stubSolutionCache) {
	store := &stubSolutionStore{}
	cache := &stubSolutionCache{entries: map[string]domain.Solution{}}

	h := &OptimizeHandler{
		Fleet: &stubFleetRepo{types: []domain.VehicleType{
			{VehicleTypeID: 1, Name: "Van", Capacity: 10, Count: 1},
		}},
		Locations: &stubLocationRepo{stops: []domain.Stop{
			{StopID: 1, Name: "Depot", IsDepot: true},
			{StopID: 2, Name: "A", Coord: domain.Coordinates{Lat: 0, Lon: 1}, Demand: 5},
			{StopID: 3, Name: "B", Coord: domain.Coordinates{Lat: 0, Lon: 2}, Demand: 5},
		}},
		Store: store,
		Cache: cache,
	}

	return h, store, cache
}

func TestOptimizeHandlerSolvesAndPersists(t *testing.T) {
	h, store, cache := newOptimizeHandler()

	req := httptest.NewRequest(http.MethodPost, "/optimize", nil)
	rec := httptest.NewRecorder()

	h.Optimize(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var res dto.SolutionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.SolutionID == "" {
		t.Error("solution_id is empty")
	}
	if len(res.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(res.Routes))
	}
	if res.Routes[0].TotalCapacity != 10 {
		t.Errorf("route total_capacity = %v, want 10", res.Routes[0].TotalCapacity)
	}
	if len(res.Routes[0].Stops) != 4 {
		t.Errorf("expected 4 stops on merged route, got %d", len(res.Routes[0].Stops))
	}
	if len(res.UnroutedLocationIDs) != 0 {
		t.Errorf("unexpected unrouted locations: %v", res.UnroutedLocationIDs)
	}

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved solution, got %d", len(store.saved))
	}
	if store.saved[0].SolutionID != res.SolutionID {
		t.Errorf("saved id %q does not match response id %q", store.saved[0].SolutionID, res.SolutionID)
	}
	if cache.puts != 1 {
		t.Errorf("expected 1 cache put, got %d", cache.puts)
	}
}

func TestOptimizeHandlerServesFromCache(t *testing.T) {
	h, store, _ := newOptimizeHandler()

	// First call populates the cache; second must be served from it without
	// another persist.
	first := httptest.NewRecorder()
	h.Optimize(first, httptest.NewRequest(http.MethodPost, "/optimize", nil))

	second := httptest.NewRecorder()
	h.Optimize(second, httptest.NewRequest(http.MethodPost, "/optimize", nil))

	if second.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", second.Code)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected cache hit to skip persistence, got %d saves", len(store.saved))
	}

	var a, b dto.SolutionResponse
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode first response: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode second response: %v", err)
	}
	if a.SolutionID != b.SolutionID {
		t.Errorf("cached response id %q differs from original %q", b.SolutionID, a.SolutionID)
	}
	if a.TotalDistanceKm != b.TotalDistanceKm {
		t.Errorf("cached total %v differs from original %v", b.TotalDistanceKm, a.TotalDistanceKm)
	}
}

func TestOptimizeHandlerCacheOptOut(t *testing.T) {
	h, store, cache := newOptimizeHandler()

	body := strings.NewReader(`{"use_cache": false}`)
	rec := httptest.NewRecorder()
	h.Optimize(rec, httptest.NewRequest(http.MethodPost, "/optimize", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cache.puts != 0 {
		t.Errorf("expected no cache writes, got %d", cache.puts)
	}
	if len(store.saved) != 1 {
		t.Errorf("expected 1 saved solution, got %d", len(store.saved))
	}
}

func TestOptimizeHandlerRejectsUnknownFields(t *testing.T) {
	h, _, _ := newOptimizeHandler()

	body := strings.NewReader(`{"use_cache": true, "bogus": 1}`)
	rec := httptest.NewRecorder()
	h.Optimize(rec, httptest.NewRequest(http.MethodPost, "/optimize", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeHandlerMethodNotAllowed(t *testing.T) {
	h, _, _ := newOptimizeHandler()

	rec := httptest.NewRecorder()
	h.Optimize(rec, httptest.NewRequest(http.MethodGet, "/optimize", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow header = %q, want POST", allow)
	}
}
