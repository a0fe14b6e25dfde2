package services

import (
	"fmt"

	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/geo"
)

// Optimize compares delivering the selected orders individually against
// delivering them as one merged multi-stop run.
//
// The baseline models what the driver would do without the merge feature:
// starting from the current location, run each order back-to-back in
// selection order (pickup then dropoff), un-optimized. The merged
// alternative is the nearest-neighbor sequence over all stops. Both sides
// are scored by the same cost model, and the result is returned even when
// merging loses; callers gate on IsBeneficial.
func Optimize(orders []*domain.Order, driver domain.Coordinate, cfg CostConfig) (*domain.OptimizationResult, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("optimize: %w", domain.ErrEmptyOrderSet)
	}
	if len(orders) < 2 {
		return nil, fmt.Errorf("optimize: got %d orders: %w", len(orders), domain.ErrInsufficientOrders)
	}
	if !driver.Valid() {
		return nil, fmt.Errorf("optimize: driver location: %w", domain.ErrInvalidCoordinate)
	}
	cfg = cfg.withDefaults()

	baseline, err := chainedRoute(orders, driver, cfg.AvgSpeedKmh)
	if err != nil {
		return nil, fmt.Errorf("optimize: baseline: %w", err)
	}
	individual, err := ScoreRoute(baseline, orders, cfg)
	if err != nil {
		return nil, fmt.Errorf("optimize: score baseline: %w", err)
	}

	merged, err := SequenceRoute(orders, driver, cfg.AvgSpeedKmh)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	mergedScore, err := ScoreRoute(merged, orders, cfg)
	if err != nil {
		return nil, fmt.Errorf("optimize: score merged: %w", err)
	}

	return &domain.OptimizationResult{
		IndividualProfit:  individual.Profit,
		MergedProfit:      mergedScore.Profit,
		TimeSavedMinutes:  individual.TimeMinutes - mergedScore.TimeMinutes,
		DistanceSavedKm:   individual.DistanceKm - mergedScore.DistanceKm,
		IndividualKm:      individual.DistanceKm,
		IndividualMinutes: individual.TimeMinutes,
		Route:             *merged,
	}, nil
}

// chainedRoute builds the un-optimized baseline: orders are visited in the
// order they were selected, pickup immediately followed by delivery, each
// leg starting where the previous one ended.
func chainedRoute(orders []*domain.Order, start domain.Coordinate, avgSpeedKmh float64) (*domain.Route, error) {
	seen := make(map[string]struct{}, len(orders))
	stops := make([]domain.Stop, 0, 2*len(orders))

	current := start
	totalKm := 0.0

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[o.ID]; ok {
			return nil, fmt.Errorf("order %s: %w", o.ID, domain.ErrDuplicateStop)
		}
		seen[o.ID] = struct{}{}

		toPickup, err := geo.DistanceKm(current, o.Pickup.Coordinate)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.ID, err)
		}
		toDelivery, err := geo.DistanceKm(o.Pickup.Coordinate, o.Delivery.Coordinate)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.ID, err)
		}

		totalKm += toPickup + toDelivery
		current = o.Delivery.Coordinate

		stops = append(stops,
			domain.Stop{OrderID: o.ID, Kind: domain.StopPickup, Location: o.Pickup},
			domain.Stop{OrderID: o.ID, Kind: domain.StopDelivery, Location: o.Delivery},
		)
	}

	return &domain.Route{
		Stops:           stops,
		TotalDistanceKm: totalKm,
		TotalMinutes:    geo.ETAMinutes(totalKm, avgSpeedKmh),
	}, nil
}
