package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisSolutionCache {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewRedisSolutionCache(rdb, time.Hour)
}

func TestSolutionCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	sol := domain.Solution{
		SolutionID: "run-1",
		Routes: []domain.Route{
			{
				Vehicle: domain.VehicleInstance{VehicleTypeID: 1, Name: "Van", Unit: 1, Capacity: 10, Remaining: 0},
				Stops: []domain.RouteStop{
					{Stop: domain.Stop{StopID: 1, Name: "Depot", IsDepot: true}, Order: 0},
					{Stop: domain.Stop{StopID: 2, Name: "A", Demand: 10}, Order: 1},
					{Stop: domain.Stop{StopID: 1, Name: "Depot", IsDepot: true}, Order: 2},
				},
				TotalDistanceKm: 42.5,
				TotalDemand:     10,
			},
		},
		TotalDistanceKm: 42.5,
	}

	if err := c.Put(ctx, "fp-1", sol); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	got, ok, err := c.Get(ctx, "fp-1")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit, got miss")
	}

	if got.SolutionID != sol.SolutionID {
		t.Errorf("solution id = %q, want %q", got.SolutionID, sol.SolutionID)
	}
	if got.TotalDistanceKm != sol.TotalDistanceKm {
		t.Errorf("total distance = %v, want %v", got.TotalDistanceKm, sol.TotalDistanceKm)
	}
	if len(got.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(got.Routes))
	}
	if len(got.Routes[0].Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(got.Routes[0].Stops))
	}
	if got.Routes[0].Vehicle.Name != "Van" {
		t.Errorf("vehicle name = %q, want Van", got.Routes[0].Vehicle.Name)
	}
}

func TestSolutionCacheMiss(t *testing.T) {
	c := newTestCache(t)

	got, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected miss, got hit")
	}
	if got != nil {
		t.Fatalf("expected nil solution on miss, got %+v", got)
	}
}

func TestSolutionCacheEmptyFingerprint(t *testing.T) {
	c := newTestCache(t)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty fingerprint get")
	}
	if err := c.Put(context.Background(), "", domain.Solution{}); err == nil {
		t.Fatal("expected error for empty fingerprint put")
	}
}
