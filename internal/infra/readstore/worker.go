package readstore

import (
	"context"
	"time"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/worker"

	"github.com/google/uuid"
)

type WorkerReadStore struct {
	db db.DBTX
}

func NewWorkerReadStore(dbtx db.DBTX) *WorkerReadStore {
	return &WorkerReadStore{db: dbtx}
}

func (r *WorkerReadStore) FindExportRowsByUser(ctx context.Context, userID uuid.UUID) ([]worker.ExportRow, error) {
	const q = `
		SELECT r.id, COALESCE(l.name, 'N/A'), COALESCE(s.spot_number, 0),
		       r.started_at, r.ended_at, r.cost_cents, r.status
		FROM reservations r
		LEFT JOIN spots s ON s.id = r.spot_id
		LEFT JOIN lots l ON l.id = s.lot_id
		WHERE r.user_id = $1
		ORDER BY r.started_at`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read export rows", err)
	}
	defer rows.Close()

	result := make([]worker.ExportRow, 0)
	for rows.Next() {
		var row worker.ExportRow
		if err := rows.Scan(&row.ReservationID, &row.LotName, &row.SpotNumber,
			&row.StartedAt, &row.EndedAt, &row.CostCents, &row.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan export row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read export rows", err)
	}
	return result, nil
}

func (r *WorkerReadStore) FindUsersWithoutBookingSince(ctx context.Context, cutoff time.Time) ([]worker.UserContact, error) {
	const q = `
		SELECT u.id, u.username, u.email
		FROM users u
		WHERE u.role = 'user'
		  AND NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.user_id = u.id AND r.started_at >= $1
		  )
		ORDER BY u.username`

	rows, err := r.db.Query(ctx, q, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users without bookings", err)
	}
	defer rows.Close()

	result := make([]worker.UserContact, 0)
	for rows.Next() {
		var contact worker.UserContact
		if err := rows.Scan(&contact.UserID, &contact.Username, &contact.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user contact", err)
		}
		result = append(result, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user contacts", err)
	}
	return result, nil
}

func (r *WorkerReadStore) CollectMonthlyActivity(ctx context.Context, from, to time.Time) ([]worker.MonthlyActivityRow, error) {
	const q = `
		SELECT u.id, u.username, u.email,
		       COUNT(r.id), COALESCE(SUM(r.cost_cents), 0)
		FROM users u
		LEFT JOIN reservations r
		  ON r.user_id = u.id
		 AND r.status = 'completed'
		 AND r.ended_at >= $1 AND r.ended_at < $2
		WHERE u.role = 'user'
		GROUP BY u.id
		ORDER BY u.username`

	rows, err := r.db.Query(ctx, q, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect monthly activity", err)
	}
	defer rows.Close()

	result := make([]worker.MonthlyActivityRow, 0)
	for rows.Next() {
		var row worker.MonthlyActivityRow
		if err := rows.Scan(&row.UserID, &row.Username, &row.Email,
			&row.ReservationCount, &row.TotalCostCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan monthly activity row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read monthly activity rows", err)
	}
	return result, nil
}
