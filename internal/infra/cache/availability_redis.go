package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"parkhub/internal/pkg/config"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisAvailabilityCache keeps TTL-bounded availability snapshots. Entries
// are derived state: losing one costs a recomputation, never correctness.
type RedisAvailabilityCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, cfg config.Config) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{
		client: client,
		prefix: cfg.Cache.KeyPrefix,
		ttl:    cfg.Cache.AvailabilityTTL,
	}
}

func (c *RedisAvailabilityCache) GetLot(ctx context.Context, lotID uuid.UUID) (*shared.LotAvailability, bool, error) {
	raw, err := c.client.Get(ctx, lotKey(c.prefix, lotID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read lot availability from cache")
	}

	var av shared.LotAvailability
	if err := json.Unmarshal(raw, &av); err != nil {
		// treat a corrupt entry as a miss
		return nil, false, nil
	}
	return &av, true, nil
}

func (c *RedisAvailabilityCache) SetLot(ctx context.Context, av *shared.LotAvailability) error {
	raw, err := json.Marshal(av)
	if err != nil {
		return errs.Wrap(err, "failed to encode lot availability")
	}
	if err := c.client.Set(ctx, lotKey(c.prefix, av.LotID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache lot availability")
	}
	return nil
}

func (c *RedisAvailabilityCache) GetAll(ctx context.Context) ([]shared.LotAvailability, bool, error) {
	raw, err := c.client.Get(ctx, allLotsKey(c.prefix)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read availability list from cache")
	}

	var avs []shared.LotAvailability
	if err := json.Unmarshal(raw, &avs); err != nil {
		return nil, false, nil
	}
	return avs, true, nil
}

func (c *RedisAvailabilityCache) SetAll(ctx context.Context, avs []shared.LotAvailability) error {
	raw, err := json.Marshal(avs)
	if err != nil {
		return errs.Wrap(err, "failed to encode availability list")
	}
	if err := c.client.Set(ctx, allLotsKey(c.prefix), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache availability list")
	}
	return nil
}

// InvalidateLot drops both the lot's own scope and the all-lots scope, since
// any occupancy or capacity change is visible in both.
func (c *RedisAvailabilityCache) InvalidateLot(ctx context.Context, lotID uuid.UUID) error {
	err := c.client.Del(ctx, lotKey(c.prefix, lotID), allLotsKey(c.prefix)).Err()
	return errs.Wrap(err, "failed to invalidate lot availability")
}

func (c *RedisAvailabilityCache) InvalidateAll(ctx context.Context) error {
	err := c.client.Del(ctx, allLotsKey(c.prefix)).Err()
	return errs.Wrap(err, "failed to invalidate availability list")
}

type RedisStatsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, cfg config.Config) *RedisStatsCache {
	return &RedisStatsCache{
		client: client,
		prefix: cfg.Cache.KeyPrefix,
		ttl:    cfg.Cache.StatsTTL,
	}
}

func (c *RedisStatsCache) Get(ctx context.Context) (*shared.DashboardStats, bool, error) {
	raw, err := c.client.Get(ctx, statsKey(c.prefix)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read stats from cache")
	}

	var stats shared.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false, nil
	}
	return &stats, true, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, stats *shared.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return errs.Wrap(err, "failed to encode stats")
	}
	if err := c.client.Set(ctx, statsKey(c.prefix), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache stats")
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	err := c.client.Del(ctx, statsKey(c.prefix)).Err()
	return errs.Wrap(err, "failed to invalidate stats")
}
