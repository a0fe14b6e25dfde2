// Package ingest turns external inputs (platform notifications, demo
// fetches) into order drafts. Nothing here touches storage; callers decide
// whether a draft becomes a persisted order.
package ingest

import "mandoob-route-service/internal/domain"

// Demo pickup/dropoff spots around central Cairo, used by the mock
// generator and as fallbacks when a notification carries no usable
// location.
var cairoSpots = []domain.Location{
	{Coordinate: domain.Coordinate{Lat: 30.0444, Lng: 31.2357}, Address: "Downtown Cairo"},
	{Coordinate: domain.Coordinate{Lat: 30.0566, Lng: 31.2394}, Address: "Tahrir Square"},
	{Coordinate: domain.Coordinate{Lat: 30.0455, Lng: 31.2240}, Address: "Cairo University"},
	{Coordinate: domain.Coordinate{Lat: 30.0626, Lng: 31.2497}, Address: "Ramses Square"},
	{Coordinate: domain.Coordinate{Lat: 30.0700, Lng: 31.2200}, Address: "Dokki"},
	{Coordinate: domain.Coordinate{Lat: 30.0571, Lng: 31.2272}, Address: "Mohandiseen"},
	{Coordinate: domain.Coordinate{Lat: 30.0484, Lng: 31.2354}, Address: "Garden City"},
	{Coordinate: domain.Coordinate{Lat: 30.0751, Lng: 31.2394}, Address: "Heliopolis"},
}
