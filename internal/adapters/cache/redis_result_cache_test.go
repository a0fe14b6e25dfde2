package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/services"
)

func testCache(t *testing.T) *RedisResultCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisResultCache(client, time.Minute)
}

func sampleResult() *domain.OptimizationResult {
	return &domain.OptimizationResult{
		IndividualProfit: 180.5,
		MergedProfit:     195.25,
		TimeSavedMinutes: 12.5,
		DistanceSavedKm:  3.75,
		Route: domain.Route{
			Stops: []domain.Stop{
				{OrderID: "a", Kind: domain.StopPickup, Location: domain.Location{Coordinate: domain.Coordinate{Lat: 30.04, Lng: 31.23}, Address: "Downtown"}},
				{OrderID: "a", Kind: domain.StopDelivery, Location: domain.Location{Coordinate: domain.Coordinate{Lat: 30.05, Lng: 31.24}}},
			},
			TotalDistanceKm: 4.2,
			TotalMinutes:    12.6,
		},
	}
}

func keyOrder(id string, updatedAt time.Time) *domain.Order {
	return &domain.Order{ID: id, UpdatedAt: updatedAt}
}

func TestResultCacheRoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	key := ResultKey(
		[]*domain.Order{keyOrder("a", now), keyOrder("b", now)},
		domain.Coordinate{Lat: 30.0444, Lng: 31.2357},
		services.CostConfig{CostPerKm: 5},
	)
	want := sampleResult()

	require.NoError(t, c.Put(ctx, key, want))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResultCacheMiss(t *testing.T) {
	c := testCache(t)

	got, ok, err := c.Get(context.Background(), "optimize:missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResultCacheNilSafe(t *testing.T) {
	var c *RedisResultCache
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.Put(ctx, "k", sampleResult()))
}

func TestResultKey(t *testing.T) {
	driver := domain.Coordinate{Lat: 30.0444, Lng: 31.2357}
	cfg := services.CostConfig{AvgSpeedKmh: 20, CostPerKm: 5}
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	a, b := keyOrder("a", now), keyOrder("b", now)

	k1 := ResultKey([]*domain.Order{a, b}, driver, cfg)
	k2 := ResultKey([]*domain.Order{a, b}, driver, cfg)
	assert.Equal(t, k1, k2, "same request must produce the same key")

	// Selection order changes the baseline, so it changes the key.
	assert.NotEqual(t, k1, ResultKey([]*domain.Order{b, a}, driver, cfg))

	assert.NotEqual(t, k1, ResultKey([]*domain.Order{a, b}, driver, services.CostConfig{AvgSpeedKmh: 20, CostPerKm: 6}))
	assert.NotEqual(t, k1, ResultKey([]*domain.Order{a, b}, domain.Coordinate{Lat: 30.1, Lng: 31.2357}, cfg))

	// Editing an order bumps UpdatedAt, so stale comparisons cannot be served.
	edited := keyOrder("a", now.Add(time.Minute))
	assert.NotEqual(t, k1, ResultKey([]*domain.Order{edited, b}, driver, cfg))
}
