package domain

// Immutable geographic coordinates (latitude, longitude, WGS 84 degrees).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within the WGS 84 range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Location is a coordinate paired with a human-readable address.
// It is immutable once attached to an Order.
type Location struct {
	Coordinate
	Address string `json:"address,omitempty"`
}
