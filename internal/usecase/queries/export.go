package queries

import (
	"context"

	"github.com/google/uuid"
)

type ExportJobStore interface {
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*ExportJobView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ExportJobView, error)
}

type ExportQueries interface {
	GetJob(ctx context.Context, id, userID uuid.UUID) (*ExportJobView, error)
	ListJobs(ctx context.Context, userID uuid.UUID) ([]*ExportJobView, error)
}

type exportQueriesImpl struct {
	store ExportJobStore
}

func NewExportQueries(store ExportJobStore) ExportQueries {
	return &exportQueriesImpl{store: store}
}

func (q *exportQueriesImpl) GetJob(ctx context.Context, id, userID uuid.UUID) (*ExportJobView, error) {
	return q.store.FindByIDAndUser(ctx, id, userID)
}

func (q *exportQueriesImpl) ListJobs(ctx context.Context, userID uuid.UUID) ([]*ExportJobView, error) {
	return q.store.FindByUserID(ctx, userID)
}
