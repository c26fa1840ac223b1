package repository

import (
	"context"

	"parkhub/internal/domain/spot"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpotRepository struct {
	db db.DBTX
}

func NewSpotRepository(dbtx db.DBTX) *SpotRepository {
	return &SpotRepository{db: dbtx}
}

func (r *SpotRepository) CreateBatch(ctx context.Context, lotID uuid.UUID, numbers []int32) error {
	const q = `
		INSERT INTO spots (id, lot_id, spot_number, status, created_at)
		SELECT gen_random_uuid(), $1, n, 'available', now()
		FROM unnest($2::int[]) AS n`

	_, err := r.db.Exec(ctx, q, lotID, numbers)
	if err != nil {
		return infra.WrapRepoErr("failed to create spots", err)
	}
	return nil
}

// ClaimLowestAvailable resolves the lowest-numbered available spot and locks
// it before trusting its status. When the lock wait ends on a spot another
// transaction just occupied, the loop moves on to the next candidate instead
// of double-booking, so the caller only ever sees post-commit state.
func (r *SpotRepository) ClaimLowestAvailable(ctx context.Context, lotID uuid.UUID) (*shared.SpotSnapshot, error) {
	const candidateQuery = `
		SELECT id
		FROM spots
		WHERE lot_id = $1 AND status = 'available' AND spot_number > $2
		ORDER BY spot_number
		LIMIT 1`

	lastNumber := int32(0)
	for {
		var candidateID uuid.UUID
		err := r.db.QueryRow(ctx, candidateQuery, lotID, lastNumber).Scan(&candidateID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return nil, infra.WrapRepoErr("no available spot in lot", err, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to select candidate spot", err)
		}

		snap, err := r.LockByID(ctx, candidateID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// candidate deleted by a concurrent shrink; rescan
				continue
			}
			return nil, err
		}

		if snap.Status == spot.StatusAvailable {
			return snap, nil
		}

		// lost the race on this spot; try the next number up
		lastNumber = snap.Number
	}
}

func (r *SpotRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.SpotSnapshot, error) {
	const q = `
		SELECT id, lot_id, spot_number, status
		FROM spots
		WHERE id = $1
		FOR UPDATE`

	var snap shared.SpotSnapshot
	var status string
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.LotID, &snap.Number, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock spot", err)
	}
	snap.Status = spot.Status(status)
	return &snap, nil
}

// LockHighestNumbered locks the n highest-numbered spots as shrink
// candidates. Locking before the status check keeps a concurrent booking
// from claiming a spot the shrink is about to delete.
func (r *SpotRepository) LockHighestNumbered(ctx context.Context, lotID uuid.UUID, n int32) ([]shared.SpotSnapshot, error) {
	const q = `
		SELECT id, lot_id, spot_number, status
		FROM spots
		WHERE lot_id = $1
		ORDER BY spot_number DESC
		LIMIT $2
		FOR UPDATE`

	rows, err := r.db.Query(ctx, q, lotID, n)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock shrink candidates", err)
	}
	defer rows.Close()

	var snaps []shared.SpotSnapshot
	for rows.Next() {
		var snap shared.SpotSnapshot
		var status string
		if err := rows.Scan(&snap.ID, &snap.LotID, &snap.Number, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shrink candidate", err)
		}
		snap.Status = spot.Status(status)
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shrink candidates", err)
	}
	return snaps, nil
}

func (r *SpotRepository) SetStatus(ctx context.Context, id uuid.UUID, status spot.Status) error {
	const q = `UPDATE spots SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update spot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) CountOccupied(ctx context.Context, lotID uuid.UUID) (int64, error) {
	const q = `SELECT COUNT(*) FROM spots WHERE lot_id = $1 AND status = 'occupied'`

	var count int64
	if err := r.db.QueryRow(ctx, q, lotID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count occupied spots", err)
	}
	return count, nil
}

func (r *SpotRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	const q = `DELETE FROM spots WHERE id = ANY($1)`

	_, err := r.db.Exec(ctx, q, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to delete spots", err)
	}
	return nil
}

func (r *SpotRepository) DeleteByLotID(ctx context.Context, lotID uuid.UUID) error {
	const q = `DELETE FROM spots WHERE lot_id = $1`

	_, err := r.db.Exec(ctx, q, lotID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lot spots", err)
	}
	return nil
}
