package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type LotReadStore struct {
	db db.DBTX
}

func NewLotReadStore(dbtx db.DBTX) *LotReadStore {
	return &LotReadStore{db: dbtx}
}

func (r *LotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LotView, error) {
	const q = `
		SELECT id, name, address, pincode, price_per_hour_cents, spot_count, created_at
		FROM lots
		WHERE id = $1`

	var v queries.LotView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.Address, &v.Pincode, &v.PricePerHourCents, &v.SpotCount, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by ID", err)
	}
	return &v, nil
}

func (r *LotReadStore) FindAll(ctx context.Context) ([]*queries.LotView, error) {
	const q = `
		SELECT id, name, address, pincode, price_per_hour_cents, spot_count, created_at
		FROM lots
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}
	defer rows.Close()

	result := make([]*queries.LotView, 0)
	for rows.Next() {
		var v queries.LotView
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Pincode,
			&v.PricePerHourCents, &v.SpotCount, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read lot rows", err)
	}
	return result, nil
}

func (r *LotReadStore) FindSpotsByLotID(ctx context.Context, lotID uuid.UUID) ([]*queries.SpotView, error) {
	const q = `
		SELECT id, lot_id, spot_number, status, created_at
		FROM spots
		WHERE lot_id = $1
		ORDER BY spot_number`

	rows, err := r.db.Query(ctx, q, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	defer rows.Close()

	result := make([]*queries.SpotView, 0)
	for rows.Next() {
		var v queries.SpotView
		if err := rows.Scan(&v.ID, &v.LotID, &v.Number, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spot rows", err)
	}
	return result, nil
}
