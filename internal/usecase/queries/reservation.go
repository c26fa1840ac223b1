package queries

import (
	"context"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 50

type ReservationStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationView, error)
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error)
	// HistoryByUser lists the user's reservations, newest first, active ones
	// included.
	HistoryByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*ReservationView, error)
	ActiveByUser(ctx context.Context, userID uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationStore
}

func NewReservationQueries(store ReservationStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID && actorRole != "admin" {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) HistoryByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return q.store.FindByUserID(ctx, userID, int32(limit))
}

func (q *reservationQueriesImpl) ActiveByUser(ctx context.Context, userID uuid.UUID) (*ReservationView, error) {
	return q.store.FindActiveByUserID(ctx, userID)
}
