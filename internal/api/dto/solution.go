package dto

type OptimizeRequest struct {
	UseCache *bool `json:"use_cache"`
}

type SolutionStopResponse struct {
	LocationID   int     `json:"location_id"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Demand       float64 `json:"demand"`
	StopOrder    int     `json:"stop_order"`
}

type SolutionRouteResponse struct {
	VehicleID       int                    `json:"vehicle_id"`
	VehicleName     string                 `json:"vehicle_name"`
	TotalDistanceKm float64                `json:"total_distance_km"`
	TotalCapacity   float64                `json:"total_capacity"`
	Stops           []SolutionStopResponse `json:"stops"`
}

type SolutionResponse struct {
	SolutionID          string                  `json:"solution_id"`
	Routes              []SolutionRouteResponse `json:"routes"`
	TotalDistanceKm     float64                 `json:"total_distance_km"`
	UnroutedLocationIDs []int                   `json:"unrouted_location_ids"`
}
