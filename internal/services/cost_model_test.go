package services

import (
	"math"
	"testing"

	"mandoob-route-service/internal/domain"
)

func TestScoreRoute(t *testing.T) {
	route := &domain.Route{TotalDistanceKm: 10}
	orders := []*domain.Order{
		{ID: "a", Payout: 100},
		{ID: "b", Payout: 50},
	}
	cfg := CostConfig{AvgSpeedKmh: 20, CostPerKm: 5, CostPerMinute: 1}

	score, err := ScoreRoute(route, orders, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10 km at 20 km/h is 30 minutes; 150 - 10*5 - 30*1 = 70.
	if score.DistanceKm != 10 {
		t.Errorf("distance = %f, want 10", score.DistanceKm)
	}
	if math.Abs(score.TimeMinutes-30) > 1e-9 {
		t.Errorf("time = %f, want 30", score.TimeMinutes)
	}
	if math.Abs(score.Profit-70) > 1e-9 {
		t.Errorf("profit = %f, want 70", score.Profit)
	}
}

func TestScoreRouteDefaults(t *testing.T) {
	route := &domain.Route{TotalDistanceKm: 20}

	// Zero config: default speed, zero costs, profit equals payout.
	score, err := ScoreRoute(route, []*domain.Order{{ID: "a", Payout: 80}}, CostConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(score.TimeMinutes-60) > 1e-9 {
		t.Errorf("time = %f, want 60 at default 20 km/h", score.TimeMinutes)
	}
	if score.Profit != 80 {
		t.Errorf("profit = %f, want 80", score.Profit)
	}
}

func TestScoreRouteIsPure(t *testing.T) {
	route := &domain.Route{TotalDistanceKm: 7.3}
	orders := []*domain.Order{{ID: "a", Payout: 120}}
	cfg := CostConfig{AvgSpeedKmh: 25, CostPerKm: 3.5, CostPerMinute: 0.2}

	first, err := ScoreRoute(route, orders, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ScoreRoute(route, orders, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("same input scored differently: %+v vs %+v", first, second)
	}
}

func TestScoreRouteRejectsNegativePayout(t *testing.T) {
	route := &domain.Route{TotalDistanceKm: 1}
	if _, err := ScoreRoute(route, []*domain.Order{{ID: "a", Payout: -5}}, CostConfig{}); err == nil {
		t.Fatal("expected error for negative payout")
	}
}

func TestScoreRouteNilRoute(t *testing.T) {
	if _, err := ScoreRoute(nil, nil, CostConfig{}); err == nil {
		t.Fatal("expected error for nil route")
	}
}
