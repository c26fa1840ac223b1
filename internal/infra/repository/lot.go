package repository

import (
	"context"

	"parkhub/internal/domain/lot"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotRepository struct {
	db db.DBTX
}

func NewLotRepository(dbtx db.DBTX) *LotRepository {
	return &LotRepository{db: dbtx}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) error {
	const q = `
		INSERT INTO lots (id, name, address, pincode, price_per_hour_cents, spot_count, highest_spot_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, now())`

	_, err := r.db.Exec(ctx, q, l.ID(), l.Name(), l.Address(), l.Pincode(), l.PricePerHourCents(), l.SpotCount())
	if err != nil {
		return infra.WrapRepoErr("failed to create lot", err)
	}
	return nil
}

func (r *LotRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.LotSnapshot, error) {
	const q = `
		SELECT id, name, address, pincode, price_per_hour_cents, spot_count, highest_spot_number, created_at
		FROM lots
		WHERE id = $1`

	return r.scanLot(ctx, q, id)
}

// LockByID takes the exclusive row lock that serializes capacity changes and
// lot deletion against each other.
func (r *LotRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.LotSnapshot, error) {
	const q = `
		SELECT id, name, address, pincode, price_per_hour_cents, spot_count, highest_spot_number, created_at
		FROM lots
		WHERE id = $1
		FOR UPDATE`

	return r.scanLot(ctx, q, id)
}

func (r *LotRepository) scanLot(ctx context.Context, q string, id uuid.UUID) (*shared.LotSnapshot, error) {
	var snap shared.LotSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Address,
		&snap.Pincode,
		&snap.PricePerHourCents,
		&snap.SpotCount,
		&snap.HighestSpotNumber,
		&snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot", err)
	}
	return &snap, nil
}

func (r *LotRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, address, pincode string, pricePerHourCents int64) error {
	const q = `
		UPDATE lots
		SET name = $2, address = $3, pincode = $4, price_per_hour_cents = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, name, address, pincode, pricePerHourCents)
	if err != nil {
		return infra.WrapRepoErr("failed to update lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) SetCapacity(ctx context.Context, id uuid.UUID, spotCount, highestSpotNumber int32) error {
	const q = `UPDATE lots SET spot_count = $2, highest_spot_number = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, spotCount, highestSpotNumber)
	if err != nil {
		return infra.WrapRepoErr("failed to update lot capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM lots WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}
