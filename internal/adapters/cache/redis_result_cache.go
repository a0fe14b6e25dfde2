// Package cache provides an optional Redis-backed cache for optimization
// results. The optimizer itself is pure and cheap; the cache exists so a
// driver toggling the same selection repeatedly does not recompute and
// re-serialize identical comparisons.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/platform/obs"
	"mandoob-route-service/internal/services"
)

const DefaultTTL = 5 * time.Minute

// RedisResultCache stores OptimizationResults keyed by order set, driver
// location, and cost config. All methods are nil-receiver safe so callers
// can wire the cache conditionally.
type RedisResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisResultCache{Client: client, TTL: ttl}
}

// ResultKey builds a deterministic cache key for an optimization request
// over the resolved orders. Each order contributes its id tagged with its
// update timestamp, so editing an order (payout, status, anything that
// bumps UpdatedAt) naturally invalidates every cached comparison it was
// part of. Coordinates are truncated to ~11 m precision, below the noise
// floor of the distance model.
//
// The baseline depends on selection order, so the unsorted sequence is
// part of the key alongside the sorted set.
func ResultKey(orders []*domain.Order, driver domain.Coordinate, cfg services.CostConfig) string {
	tagged := make([]string, 0, len(orders))
	for _, o := range orders {
		tagged = append(tagged, fmt.Sprintf("%s@%d", o.ID, o.UpdatedAt.UTC().UnixNano()))
	}
	sorted := append([]string(nil), tagged...)
	sort.Strings(sorted)

	return fmt.Sprintf("optimize:%s|%s|%.4f,%.4f|%g:%g:%g",
		strings.Join(tagged, ","),
		strings.Join(sorted, ","),
		driver.Lat, driver.Lng,
		cfg.AvgSpeedKmh, cfg.CostPerKm, cfg.CostPerMinute,
	)
}

// Get returns the cached result for key, or (nil, false) on a miss.
func (c *RedisResultCache) Get(ctx context.Context, key string) (_ *domain.OptimizationResult, _ bool, err error) {
	if c == nil || c.Client == nil {
		return nil, false, nil
	}
	defer obs.Time(ctx, "cache.result.Get")(&err)

	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("result cache get %q: %w", key, err)
	}

	var res domain.OptimizationResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil, false, fmt.Errorf("result cache get %q: unmarshal: %w", key, err)
	}
	return &res, true, nil
}

// Put stores a result under key with the configured TTL.
func (c *RedisResultCache) Put(ctx context.Context, key string, res *domain.OptimizationResult) (err error) {
	if c == nil || c.Client == nil {
		return nil
	}
	defer obs.Time(ctx, "cache.result.Put")(&err)

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("result cache put %q: marshal: %w", key, err)
	}
	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
		return fmt.Errorf("result cache put %q: %w", key, err)
	}
	return nil
}
