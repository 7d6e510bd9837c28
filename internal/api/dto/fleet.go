package dto

type VehicleTypeResponse struct {
	VehicleTypeID int     `json:"vehicle_type_id"`
	Name          string  `json:"name"`
	Capacity      float64 `json:"capacity"`
	Count         int     `json:"count"`
}

type ListVehicleTypesResponse struct {
	VehicleTypes []VehicleTypeResponse `json:"vehicle_types"`
}

type LocationResponse struct {
	LocationID int     `json:"location_id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Demand     float64 `json:"demand"`
	IsDepot    bool    `json:"is_depot"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
