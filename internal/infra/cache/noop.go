package cache

import (
	"context"

	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// NoopAvailabilityCache misses on every read. It stands in when Redis is
// disabled so the query side always falls through to authoritative reads.
type NoopAvailabilityCache struct{}

func NewNoopAvailabilityCache() *NoopAvailabilityCache {
	return &NoopAvailabilityCache{}
}

func (NoopAvailabilityCache) GetLot(context.Context, uuid.UUID) (*shared.LotAvailability, bool, error) {
	return nil, false, nil
}

func (NoopAvailabilityCache) SetLot(context.Context, *shared.LotAvailability) error {
	return nil
}

func (NoopAvailabilityCache) GetAll(context.Context) ([]shared.LotAvailability, bool, error) {
	return nil, false, nil
}

func (NoopAvailabilityCache) SetAll(context.Context, []shared.LotAvailability) error {
	return nil
}

func (NoopAvailabilityCache) InvalidateLot(context.Context, uuid.UUID) error {
	return nil
}

func (NoopAvailabilityCache) InvalidateAll(context.Context) error {
	return nil
}

type NoopStatsCache struct{}

func NewNoopStatsCache() *NoopStatsCache {
	return &NoopStatsCache{}
}

func (NoopStatsCache) Get(context.Context) (*shared.DashboardStats, bool, error) {
	return nil, false, nil
}

func (NoopStatsCache) Set(context.Context, *shared.DashboardStats) error {
	return nil
}

func (NoopStatsCache) Invalidate(context.Context) error {
	return nil
}
