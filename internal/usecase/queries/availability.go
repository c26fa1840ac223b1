package queries

import (
	"context"
	"log/slog"

	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityStore reads availability aggregates straight from the spot
// rows. Counting under one statement keeps total/occupied/available
// internally consistent even while bookings commit around the read.
type AvailabilityStore interface {
	FindLot(ctx context.Context, lotID uuid.UUID) (*shared.LotAvailability, error)
	FindAll(ctx context.Context) ([]shared.LotAvailability, error)
}

type AvailabilityQueries interface {
	// GetLot serves a possibly stale availability snapshot for one lot.
	// Staleness is bounded by the cache TTL; a cache failure degrades to the
	// authoritative read instead of an error.
	GetLot(ctx context.Context, lotID uuid.UUID) (*shared.LotAvailability, error)
	ListLots(ctx context.Context) ([]shared.LotAvailability, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityStore
	cache shared.AvailabilityCache
}

func NewAvailabilityQueries(store AvailabilityStore, cache shared.AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, cache: cache}
}

func (q *availabilityQueriesImpl) GetLot(ctx context.Context, lotID uuid.UUID) (*shared.LotAvailability, error) {
	cached, ok, err := q.cache.GetLot(ctx, lotID)
	if err != nil {
		slog.Warn("availability cache read failed", "lot_id", lotID, "error", err.Error())
	}
	if ok {
		return cached, nil
	}

	av, err := q.store.FindLot(ctx, lotID)
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetLot(ctx, av); err != nil {
		slog.Warn("availability cache write failed", "lot_id", lotID, "error", err.Error())
	}
	return av, nil
}

func (q *availabilityQueriesImpl) ListLots(ctx context.Context) ([]shared.LotAvailability, error) {
	cached, ok, err := q.cache.GetAll(ctx)
	if err != nil {
		slog.Warn("availability cache read failed", "scope", "all", "error", err.Error())
	}
	if ok {
		return cached, nil
	}

	avs, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetAll(ctx, avs); err != nil {
		slog.Warn("availability cache write failed", "scope", "all", "error", err.Error())
	}
	return avs, nil
}
