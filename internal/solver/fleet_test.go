package solver

import (
	"testing"

	"route-optimizer-service/internal/domain"
)

func TestExpandFleetOrderAndCapacity(t *testing.T) {
	types := []domain.VehicleType{
		{VehicleTypeID: 1, Name: "Van", Capacity: 40, Count: 2},
		{VehicleTypeID: 2, Name: "Truck", Capacity: 120, Count: 1},
	}

	pool := ExpandFleet(types)

	if len(pool) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(pool))
	}

	want := []struct {
		typeID int
		unit   int
		cap    float64
	}{
		{1, 1, 40},
		{1, 2, 40},
		{2, 1, 120},
	}

	for i, w := range want {
		got := pool[i]
		if got.VehicleTypeID != w.typeID || got.Unit != w.unit {
			t.Errorf("pool[%d] = type %d unit %d, want type %d unit %d", i, got.VehicleTypeID, got.Unit, w.typeID, w.unit)
		}
		if got.Capacity != w.cap || got.Remaining != w.cap {
			t.Errorf("pool[%d] capacity/remaining = %v/%v, want %v/%v", i, got.Capacity, got.Remaining, w.cap, w.cap)
		}
	}
}

func TestExpandFleetEmpty(t *testing.T) {
	if pool := ExpandFleet(nil); len(pool) != 0 {
		t.Fatalf("expected empty pool, got %d instances", len(pool))
	}
}
