package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// Spots and lots may be deleted after a resize while the reservation rows
// stay for history, so the joins are outer and the labels degrade to N/A.
const reservationSelect = `
	SELECT r.id, r.spot_id, COALESCE(s.spot_number, 0), COALESCE(s.lot_id, '00000000-0000-0000-0000-000000000000'::uuid),
	       COALESCE(l.name, 'N/A'), r.user_id,
	       r.started_at, r.ended_at, r.cost_cents, r.status, r.created_at
	FROM reservations r
	LEFT JOIN spots s ON s.id = r.spot_id
	LEFT JOIN lots l ON l.id = s.lot_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const q = reservationSelect + `
	WHERE r.id = $1`

	v, err := scanReservationView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return v, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	const q = reservationSelect + `
	WHERE r.user_id = $1
	ORDER BY r.started_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

func (r *ReservationReadStore) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*queries.ReservationView, error) {
	const q = reservationSelect + `
	WHERE r.user_id = $1 AND r.status = 'active'`

	v, err := scanReservationView(r.db.QueryRow(ctx, q, userID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active reservation", err)
	}
	return v, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(&v.ID, &v.SpotID, &v.SpotNumber, &v.LotID, &v.LotName, &v.UserID,
		&v.StartedAt, &v.EndedAt, &v.CostCents, &v.Status, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
