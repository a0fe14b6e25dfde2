package services

import (
	"fmt"

	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/geo"
)

// CostConfig holds the operating-cost assumptions used to score routes.
// The zero value is usable: defaults are applied by withDefaults.
type CostConfig struct {
	AvgSpeedKmh   float64 `json:"avg_speed_kmh"`
	CostPerKm     float64 `json:"cost_per_km"`
	CostPerMinute float64 `json:"cost_per_minute"`
}

func (c CostConfig) withDefaults() CostConfig {
	if c.AvgSpeedKmh <= 0 {
		c.AvgSpeedKmh = geo.DefaultAvgSpeedKmh
	}
	return c
}

// RouteScore aggregates what a route costs and earns.
type RouteScore struct {
	DistanceKm  float64
	TimeMinutes float64
	Profit      float64
}

// ScoreRoute converts a route plus the payouts of its orders into total
// distance, time, and profit:
//
//	profit = sum(payout) - distance*costPerKm - time*costPerMinute
//
// Time is derived from distance at the configured speed so that baseline
// and merged routes are compared under identical assumptions. The function
// is pure: same inputs always yield the same score.
func ScoreRoute(route *domain.Route, orders []*domain.Order, cfg CostConfig) (RouteScore, error) {
	if route == nil {
		return RouteScore{}, fmt.Errorf("score route: route must be non-nil")
	}
	cfg = cfg.withDefaults()

	payout := 0.0
	for _, o := range orders {
		if o.Payout < 0 {
			return RouteScore{}, fmt.Errorf("score route: order %s: payout must be >= 0", o.ID)
		}
		payout += o.Payout
	}

	km := route.TotalDistanceKm
	minutes := geo.ETAMinutes(km, cfg.AvgSpeedKmh)

	return RouteScore{
		DistanceKm:  km,
		TimeMinutes: minutes,
		Profit:      payout - km*cfg.CostPerKm - minutes*cfg.CostPerMinute,
	}, nil
}
