package repository

import (
	"context"
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const q = `
		INSERT INTO reservations (id, spot_id, user_id, started_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`

	_, err := r.db.Exec(ctx, q,
		res.ID(), res.SpotID(), res.UserID(), res.StartedAt(), res.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

// LockActiveByIDAndOwner matches on status = 'active', so a reservation that
// was already released simply fails to match and surfaces as NOT_FOUND.
func (r *ReservationRepository) LockActiveByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*reservation.Reservation, error) {
	const q = `
		SELECT id, spot_id, user_id, started_at, ended_at, cost_cents, status, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2 AND status = 'active'
		FOR UPDATE`

	return r.scanReservation(ctx, q, id, userID)
}

func (r *ReservationRepository) HasActiveByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM reservations WHERE user_id = $1 AND status = 'active')`

	var exists bool
	if err := r.db.QueryRow(ctx, q, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active reservation", err)
	}
	return exists, nil
}

func (r *ReservationRepository) CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int64, error) {
	const q = `
		SELECT COUNT(*)
		FROM reservations r
		JOIN spots s ON s.id = r.spot_id
		WHERE s.lot_id = $1 AND r.status = 'active'`

	var count int64
	if err := r.db.QueryRow(ctx, q, lotID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) Complete(ctx context.Context, res *reservation.Reservation) error {
	const q = `
		UPDATE reservations
		SET ended_at = $2, cost_cents = $3, status = $4
		WHERE id = $1 AND status = 'active'`

	tag, err := r.db.Exec(ctx, q,
		res.ID(),
		pgconv.TimePtrToPgtype(res.EndedAt()),
		pgconv.Int64PtrToPgtype(res.CostCents()),
		res.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to complete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("active reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) scanReservation(ctx context.Context, q string, args ...any) (*reservation.Reservation, error) {
	var (
		id, spotID, userID uuid.UUID
		startedAt          time.Time
		endedAt            *time.Time
		costCents          *int64
		status             string
		createdAt          time.Time
	)
	err := r.db.QueryRow(ctx, q, args...).
		Scan(&id, &spotID, &userID, &startedAt, &endedAt, &costCents, &status, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	st, err := reservation.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation status in store", err)
	}
	return reservation.ReconstructReservation(id, spotID, userID, startedAt, endedAt, costCents, st, createdAt), nil
}
