package repository

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExportJobRepository struct {
	db db.DBTX
}

func NewExportJobRepository(dbtx db.DBTX) *ExportJobRepository {
	return &ExportJobRepository{db: dbtx}
}

func (r *ExportJobRepository) Create(ctx context.Context, job *shared.ExportJobSnapshot) error {
	const q = `
		INSERT INTO export_jobs (id, user_id, status, requested_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, job.ID, job.UserID, string(job.Status), job.RequestedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create export job", err)
	}
	return nil
}

// ClaimNextPending flips the oldest pending job to processing under a row
// lock. SKIP LOCKED keeps concurrent workers from queueing behind each
// other's claims.
func (r *ExportJobRepository) ClaimNextPending(ctx context.Context) (*shared.ExportJobSnapshot, error) {
	const q = `
		UPDATE export_jobs
		SET status = 'processing'
		WHERE id = (
			SELECT id FROM export_jobs
			WHERE status = 'pending'
			ORDER BY requested_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, user_id, status, file_path, requested_at, completed_at`

	var job shared.ExportJobSnapshot
	var status string
	err := r.db.QueryRow(ctx, q).
		Scan(&job.ID, &job.UserID, &status, &job.FilePath, &job.RequestedAt, &job.CompletedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending export job", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim export job", err)
	}
	job.Status = shared.ExportJobStatus(status)
	return &job, nil
}

func (r *ExportJobRepository) MarkDone(ctx context.Context, id uuid.UUID, filePath string) error {
	const q = `
		UPDATE export_jobs
		SET status = 'done', file_path = $2, completed_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, filePath)
	if err != nil {
		return infra.WrapRepoErr("failed to mark export job done", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("export job not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExportJobRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE export_jobs
		SET status = 'failed', completed_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark export job failed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("export job not found", nil, infra.KindNotFound)
	}
	return nil
}
