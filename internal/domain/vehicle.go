package domain

// Immutable fleet definition: Count identical vehicles sharing one capacity.
type VehicleType struct {
	VehicleTypeID int
	Name          string
	Capacity      float64
	Count         int
}

// One concrete vehicle expanded from a VehicleType.
// Remaining decreases as stops are assigned to the route bound to this
// instance. Instances live for a single optimization run and are never
// persisted.
type VehicleInstance struct {
	VehicleTypeID int
	Name          string
	Unit          int
	Capacity      float64
	Remaining     float64
}
