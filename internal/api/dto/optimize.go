package dto

type CoordinateDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CostConfigDTO struct {
	AvgSpeedKmh   float64 `json:"avg_speed_kmh,omitempty"`
	CostPerKm     float64 `json:"cost_per_km,omitempty"`
	CostPerMinute float64 `json:"cost_per_minute,omitempty"`
}

type OptimizeRequest struct {
	OrderIDs       []string       `json:"order_ids"`
	DriverLocation CoordinateDTO  `json:"driver_location"`
	Config         *CostConfigDTO `json:"config,omitempty"`
}

type RouteStopResponse struct {
	OrderID  string      `json:"order_id"`
	Kind     string      `json:"kind"`
	Location LocationDTO `json:"location"`
}

// TotalMinutes is rounded to whole minutes for display; precise leg sums
// stay internal.
type RouteResponse struct {
	Stops           []RouteStopResponse `json:"stops"`
	TotalDistanceKm float64             `json:"total_distance_km"`
	TotalMinutes    int                 `json:"total_minutes"`
}

// EstimatedProfit mirrors MergedProfit; the dashboard's headline card
// reads it directly.
type OptimizeResponse struct {
	Route            RouteResponse `json:"route"`
	EstimatedProfit  float64       `json:"estimated_profit"`
	IndividualProfit float64       `json:"individual_profit"`
	MergedProfit     float64       `json:"merged_profit"`
	TimeSavedMinutes float64       `json:"time_saved_minutes"`
	DistanceSavedKm  float64       `json:"distance_saved_km"`
	Beneficial       bool          `json:"beneficial"`
}
