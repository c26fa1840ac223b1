package queries

import (
	"context"

	"github.com/google/uuid"
)

type LotStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LotView, error)
	FindAll(ctx context.Context) ([]*LotView, error)
	FindSpotsByLotID(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error)
}

type LotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LotView, error)
	List(ctx context.Context) ([]*LotView, error)
	ListSpots(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error)
}

type lotQueriesImpl struct {
	store LotStore
}

func NewLotQueries(store LotStore) LotQueries {
	return &lotQueriesImpl{store: store}
}

func (q *lotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LotView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *lotQueriesImpl) List(ctx context.Context) ([]*LotView, error) {
	return q.store.FindAll(ctx)
}

func (q *lotQueriesImpl) ListSpots(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error) {
	// existence check first so an unknown lot reads as NOT_FOUND, not empty
	if _, err := q.store.FindByID(ctx, lotID); err != nil {
		return nil, err
	}
	return q.store.FindSpotsByLotID(ctx, lotID)
}
