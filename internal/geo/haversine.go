// Package geo provides great-circle distance and travel time estimates
// between coordinates. All functions are pure.
package geo

import (
	"fmt"
	"math"

	"mandoob-route-service/internal/domain"
)

const earthRadiusKm = 6371.0

// DefaultAvgSpeedKmh is the assumed average urban driving speed used when
// the caller does not configure one.
const DefaultAvgSpeedKmh = 20.0

// DistanceKm returns the haversine distance between two coordinates in
// kilometers. Out-of-range coordinates are rejected.
func DistanceKm(a, b domain.Coordinate) (float64, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("distance: (%f, %f): %w", a.Lat, a.Lng, domain.ErrInvalidCoordinate)
	}
	if !b.Valid() {
		return 0, fmt.Errorf("distance: (%f, %f): %w", b.Lat, b.Lng, domain.ErrInvalidCoordinate)
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h)), nil
}

// ETAMinutes converts a distance to travel time at the given average speed.
// Non-positive speeds fall back to DefaultAvgSpeedKmh. The value is kept as
// a float so leg times sum without rounding drift.
func ETAMinutes(distanceKm, avgSpeedKmh float64) float64 {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultAvgSpeedKmh
	}
	return distanceKm / avgSpeedKmh * 60
}

// DisplayMinutes rounds a duration to the nearest whole minute for
// presentation. Internal sums stay in float form.
func DisplayMinutes(minutes float64) int {
	return int(math.Round(minutes))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
