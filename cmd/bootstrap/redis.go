package bootstrap

import (
	"context"
	"log/slog"

	"parkhub/internal/infra/cache"
	"parkhub/internal/pkg/config"
	"parkhub/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewCaches,
	),
)

// NewCaches wires the Redis-backed caches, or no-op caches when Redis is
// disabled. Either way the query side sees the same ports.
func NewCaches(lc fx.Lifecycle, cfg config.Config) (shared.AvailabilityCache, shared.StatsCache) {
	if !cfg.Redis.Enabled {
		slog.Info("redis disabled, availability served from authoritative reads only")
		return cache.NewNoopAvailabilityCache(), cache.NewNoopStatsCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// cache is derived state; come up degraded instead of failing
				slog.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisAvailabilityCache(client, cfg), cache.NewRedisStatsCache(client, cfg)
}
