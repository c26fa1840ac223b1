package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExportJobReadStore struct {
	db db.DBTX
}

func NewExportJobReadStore(dbtx db.DBTX) *ExportJobReadStore {
	return &ExportJobReadStore{db: dbtx}
}

func (r *ExportJobReadStore) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*queries.ExportJobView, error) {
	const q = `
		SELECT id, status, file_path, requested_at, completed_at
		FROM export_jobs
		WHERE id = $1 AND user_id = $2`

	v, err := scanExportJob(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("export job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find export job", err)
	}
	return v, nil
}

func (r *ExportJobReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ExportJobView, error) {
	const q = `
		SELECT id, status, file_path, requested_at, completed_at
		FROM export_jobs
		WHERE user_id = $1
		ORDER BY requested_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list export jobs", err)
	}
	defer rows.Close()

	result := make([]*queries.ExportJobView, 0)
	for rows.Next() {
		v, err := scanExportJob(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan export job row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read export job rows", err)
	}
	return result, nil
}

func scanExportJob(row rowScanner) (*queries.ExportJobView, error) {
	var v queries.ExportJobView
	err := row.Scan(&v.ID, &v.Status, &v.FilePath, &v.RequestedAt, &v.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
