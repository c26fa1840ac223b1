package queries

import (
	"context"
	"log/slog"

	"parkhub/internal/usecase/shared"
)

type StatsStore interface {
	CollectDashboard(ctx context.Context) (*shared.DashboardStats, error)
}

type StatsQueries interface {
	// Dashboard aggregates fleet-wide occupancy and revenue for admins.
	Dashboard(ctx context.Context) (*shared.DashboardStats, error)
}

type statsQueriesImpl struct {
	store StatsStore
	cache shared.StatsCache
}

func NewStatsQueries(store StatsStore, cache shared.StatsCache) StatsQueries {
	return &statsQueriesImpl{store: store, cache: cache}
}

func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*shared.DashboardStats, error) {
	cached, ok, err := q.cache.Get(ctx)
	if err != nil {
		slog.Warn("stats cache read failed", "error", err.Error())
	}
	if ok {
		return cached, nil
	}

	stats, err := q.store.CollectDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, stats); err != nil {
		slog.Warn("stats cache write failed", "error", err.Error())
	}
	return stats, nil
}
