package commands

import (
	"context"

	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExportCommands interface {
	// RequestExport enqueues a CSV export of the user's reservation history.
	// The job is picked up asynchronously by the export worker.
	RequestExport(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type exportCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExportCommands(uow shared.UnitOfWork, clk clock.Clock) ExportCommands {
	return &exportCommandsImpl{uow: uow, clock: clk}
}

func (e *exportCommandsImpl) RequestExport(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	job := shared.ExportJobSnapshot{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      shared.ExportJobPending,
		RequestedAt: e.clock.Now(),
	}

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.ExportJobs().Create(ctx, &job); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return job.ID, nil
}
