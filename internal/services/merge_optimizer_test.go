package services

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/geo"
)

// Scenario from the dashboard's demo data: order B's pickup sits on order
// A's delivery path, so merging shortens the total drive.
func nearbyOrders() (driver domain.Coordinate, orders []*domain.Order) {
	driver = domain.Coordinate{Lat: 30.0444, Lng: 31.2357}
	orders = []*domain.Order{
		testOrder("a",
			domain.Coordinate{Lat: 30.0444, Lng: 31.2357},
			domain.Coordinate{Lat: 30.0460, Lng: 31.2370}, 100),
		testOrder("b",
			domain.Coordinate{Lat: 30.0446, Lng: 31.2359},
			domain.Coordinate{Lat: 30.0462, Lng: 31.2372}, 100),
	}
	return driver, orders
}

func TestOptimizeNearbyOrdersBenefit(t *testing.T) {
	driver, orders := nearbyOrders()
	cfg := CostConfig{AvgSpeedKmh: 20, CostPerKm: 5}

	res, err := Optimize(orders, driver, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.DistanceSavedKm <= 0 {
		t.Errorf("distance saved = %f, want > 0", res.DistanceSavedKm)
	}
	if res.TimeSavedMinutes <= 0 {
		t.Errorf("time saved = %f, want > 0", res.TimeSavedMinutes)
	}
	if res.MergedProfit < res.IndividualProfit {
		t.Errorf("merged profit %f < individual %f", res.MergedProfit, res.IndividualProfit)
	}
	if !res.IsBeneficial() {
		t.Error("expected a beneficial merge")
	}
	if len(res.Route.Stops) != 4 {
		t.Fatalf("expected 4 stops, got %d", len(res.Route.Stops))
	}
}

func TestOptimizeBaselineIsChained(t *testing.T) {
	driver, orders := nearbyOrders()

	res, err := Optimize(orders, driver, CostConfig{AvgSpeedKmh: 20, CostPerKm: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Baseline drives driver -> a.pickup -> a.delivery -> b.pickup -> b.delivery.
	want := 0.0
	current := driver
	for _, o := range orders {
		d1, _ := geo.DistanceKm(current, o.Pickup.Coordinate)
		d2, _ := geo.DistanceKm(o.Pickup.Coordinate, o.Delivery.Coordinate)
		want += d1 + d2
		current = o.Delivery.Coordinate
	}

	if math.Abs(res.IndividualKm-want) > 1e-9 {
		t.Fatalf("individual distance = %f, want %f", res.IndividualKm, want)
	}

	// Profit identity: payouts minus per-km cost over the chained distance.
	wantProfit := 200 - want*5
	if math.Abs(res.IndividualProfit-wantProfit) > 1e-9 {
		t.Fatalf("individual profit = %f, want %f", res.IndividualProfit, wantProfit)
	}
}

func TestOptimizeFarOrdersNotBeneficial(t *testing.T) {
	// Deliveries on opposite sides of the city, over 15 km apart. The
	// greedy merge interleaves the pickups and pays for it; the result is
	// still returned, just flagged as not beneficial.
	driver := domain.Coordinate{Lat: 30.00, Lng: 31.20}
	orders := []*domain.Order{
		testOrder("north",
			domain.Coordinate{Lat: 30.01, Lng: 31.20},
			domain.Coordinate{Lat: 30.10, Lng: 31.20}, 100),
		testOrder("south",
			domain.Coordinate{Lat: 29.99, Lng: 31.20},
			domain.Coordinate{Lat: 29.90, Lng: 31.20}, 100),
	}
	cfg := CostConfig{AvgSpeedKmh: 20, CostPerKm: 5}

	res, err := Optimize(orders, driver, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.IsBeneficial() {
		t.Error("expected merge to lose against the chained baseline")
	}
	if res.MergedProfit >= res.IndividualProfit {
		t.Errorf("merged profit %f, want < individual %f", res.MergedProfit, res.IndividualProfit)
	}
	if res.DistanceSavedKm >= 0 {
		t.Errorf("distance saved = %f, want < 0", res.DistanceSavedKm)
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	driver, orders := nearbyOrders()
	cfg := CostConfig{AvgSpeedKmh: 20, CostPerKm: 5, CostPerMinute: 0.5}

	first, err := Optimize(orders, driver, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Optimize(orders, driver, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input produced different results")
	}
}

func TestOptimizeInputValidation(t *testing.T) {
	driver, orders := nearbyOrders()

	if _, err := Optimize(nil, driver, CostConfig{}); !errors.Is(err, domain.ErrEmptyOrderSet) {
		t.Errorf("no orders error = %v, want ErrEmptyOrderSet", err)
	}

	if _, err := Optimize(orders[:1], driver, CostConfig{}); !errors.Is(err, domain.ErrInsufficientOrders) {
		t.Errorf("single order error = %v, want ErrInsufficientOrders", err)
	}

	dup := []*domain.Order{orders[0], orders[0]}
	if _, err := Optimize(dup, driver, CostConfig{}); !errors.Is(err, domain.ErrDuplicateStop) {
		t.Errorf("duplicate error = %v, want ErrDuplicateStop", err)
	}

	if _, err := Optimize(orders, domain.Coordinate{Lat: 200}, CostConfig{}); !errors.Is(err, domain.ErrInvalidCoordinate) {
		t.Errorf("bad driver error = %v, want ErrInvalidCoordinate", err)
	}
}
