package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// The availability aggregate is computed from spot rows in one statement, so
// the three counters are a consistent snapshot of a single point in time.
const availabilitySelect = `
	SELECT l.id, l.name, l.address, l.pincode, l.price_per_hour_cents,
	       COUNT(s.id) AS total,
	       COUNT(s.id) FILTER (WHERE s.status = 'occupied') AS occupied
	FROM lots l
	LEFT JOIN spots s ON s.lot_id = l.id`

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) FindLot(ctx context.Context, lotID uuid.UUID) (*shared.LotAvailability, error) {
	const q = availabilitySelect + `
	WHERE l.id = $1
	GROUP BY l.id`

	av, err := scanAvailability(r.db.QueryRow(ctx, q, lotID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read lot availability", err)
	}
	return av, nil
}

func (r *AvailabilityReadStore) FindAll(ctx context.Context) ([]shared.LotAvailability, error) {
	const q = availabilitySelect + `
	GROUP BY l.id
	ORDER BY l.name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read availability", err)
	}
	defer rows.Close()

	avs := make([]shared.LotAvailability, 0)
	for rows.Next() {
		av, err := scanAvailability(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		avs = append(avs, *av)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rows", err)
	}
	return avs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAvailability(row rowScanner) (*shared.LotAvailability, error) {
	var av shared.LotAvailability
	var total, occupied int64
	err := row.Scan(&av.LotID, &av.Name, &av.Address, &av.Pincode,
		&av.PricePerHourCents, &total, &occupied)
	if err != nil {
		return nil, err
	}
	av.TotalSpots = int32(total)
	av.OccupiedSpots = int32(occupied)
	av.AvailableSpots = av.TotalSpots - av.OccupiedSpots
	return &av, nil
}
