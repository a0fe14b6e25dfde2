package services

import (
	"errors"
	"fmt"

	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/geo"
)

// Distances within this margin are treated as ties and resolved by the
// deterministic tie-break rules below.
const tieEpsilonKm = 1e-6

// SequenceRoute orders all pickup and delivery stops of the given orders
// into a single visiting sequence using a greedy nearest-neighbor walk.
//
// The walk starts at the driver's location. Initially only pickups are
// available; visiting a pickup releases its sibling delivery. At each step
// the nearest available stop is appended. Ties within tieEpsilonKm prefer
// a delivery over a pickup (clears outstanding obligations first), then
// the lower order id, so identical input always yields an identical route.
//
// The algorithm does not attempt global optimization (exact TSP with
// precedence is NP-hard); it prioritizes determinism and simplicity.
func SequenceRoute(orders []*domain.Order, start domain.Coordinate, avgSpeedKmh float64) (*domain.Route, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("sequence route: %w", domain.ErrEmptyOrderSet)
	}
	if !start.Valid() {
		return nil, fmt.Errorf("sequence route: start: %w", domain.ErrInvalidCoordinate)
	}

	seen := make(map[string]struct{}, len(orders))
	deliveries := make(map[string]domain.Stop, len(orders))
	available := make([]domain.Stop, 0, len(orders))

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("sequence route: %w", err)
		}
		if _, ok := seen[o.ID]; ok {
			return nil, fmt.Errorf("sequence route: order %s: %w", o.ID, domain.ErrDuplicateStop)
		}
		seen[o.ID] = struct{}{}

		available = append(available, domain.Stop{OrderID: o.ID, Kind: domain.StopPickup, Location: o.Pickup})
		deliveries[o.ID] = domain.Stop{OrderID: o.ID, Kind: domain.StopDelivery, Location: o.Delivery}
	}

	current := start
	stops := make([]domain.Stop, 0, 2*len(orders))
	totalKm := 0.0

	for len(available) > 0 {
		bestIdx := -1
		bestKm := 0.0

		for i, s := range available {
			d, err := geo.DistanceKm(current, s.Location.Coordinate)
			if err != nil {
				return nil, fmt.Errorf("sequence route: order %s: %w", s.OrderID, err)
			}
			if bestIdx == -1 || betterCandidate(s, d, available[bestIdx], bestKm) {
				bestIdx = i
				bestKm = d
			}
		}
		if bestIdx == -1 {
			return nil, errors.New("sequence route: failed to select next stop")
		}

		next := available[bestIdx]
		available = append(available[:bestIdx], available[bestIdx+1:]...)

		stops = append(stops, next)
		totalKm += bestKm
		current = next.Location.Coordinate

		// A visited pickup releases its delivery into the candidate pool.
		if next.Kind == domain.StopPickup {
			available = append(available, deliveries[next.OrderID])
		}
	}

	return &domain.Route{
		Stops:           stops,
		TotalDistanceKm: totalKm,
		TotalMinutes:    geo.ETAMinutes(totalKm, avgSpeedKmh),
	}, nil
}

// betterCandidate reports whether stop s at distance d should replace the
// current best candidate.
func betterCandidate(s domain.Stop, d float64, best domain.Stop, bestKm float64) bool {
	if d < bestKm-tieEpsilonKm {
		return true
	}
	if d > bestKm+tieEpsilonKm {
		return false
	}
	// Equidistant: delivery beats pickup, then ascending order id.
	if s.Kind != best.Kind {
		return s.Kind == domain.StopDelivery
	}
	return s.OrderID < best.OrderID
}
