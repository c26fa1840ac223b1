package commands

import (
	"context"
	"log/slog"

	"parkhub/internal/domain/spot"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/patch"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResizeResult struct {
	LotID   uuid.UUID
	Added   int32
	Removed int32
}

type CapacityCommands interface {
	CreateLot(ctx context.Context, req reqdto.CreateLotRequest) (uuid.UUID, error)
	UpdateLot(ctx context.Context, lotID uuid.UUID, req reqdto.UpdateLotRequest) error
	// Resize grows or shrinks the lot to the target spot count. Growth mints
	// fresh numbers above the historical maximum; shrink removes the
	// highest-numbered spots and refuses entirely if any of them is occupied.
	Resize(ctx context.Context, lotID uuid.UUID, newCount int32) (*ResizeResult, error)
	// DeleteLot removes the lot and all its spots, refusing while any spot is
	// occupied.
	DeleteLot(ctx context.Context, lotID uuid.UUID) error
}

type capacityCommandsImpl struct {
	uow        shared.UnitOfWork
	cache      shared.AvailabilityCache
	statsCache shared.StatsCache
}

func NewCapacityCommands(
	uow shared.UnitOfWork,
	cache shared.AvailabilityCache,
	statsCache shared.StatsCache,
) CapacityCommands {
	return &capacityCommandsImpl{
		uow:        uow,
		cache:      cache,
		statsCache: statsCache,
	}
}

func (c *capacityCommandsImpl) CreateLot(ctx context.Context, req reqdto.CreateLotRequest) (uuid.UUID, error) {
	newLot, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lots().Create(ctx, newLot); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		if newLot.SpotCount() > 0 {
			numbers := numberRange(1, newLot.SpotCount())
			if err := tx.Spots().CreateBatch(ctx, newLot.ID(), numbers); err != nil {
				return errs.Mark(err, ErrDatabaseFailure)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.invalidateAll(ctx)
	return newLot.ID(), nil
}

func (c *capacityCommandsImpl) UpdateLot(ctx context.Context, lotID uuid.UUID, req reqdto.UpdateLotRequest) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Lots().LockByID(ctx, lotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrLotNotFound)
			}
			return errs.Mark(err, ErrDatabaseFailure)
		}

		name := patch.Coalesce(req.Name, current.Name)
		price := patch.Coalesce(req.PricePerHourCents, current.PricePerHourCents)
		if name == "" || price < 0 {
			return ErrDomainValidation
		}

		err = tx.Lots().UpdateProfile(ctx, lotID,
			name,
			patch.Coalesce(req.Address, current.Address),
			patch.Coalesce(req.Pincode, current.Pincode),
			price,
		)
		if err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateLot(ctx, lotID)
	return nil
}

func (c *capacityCommandsImpl) Resize(ctx context.Context, lotID uuid.UUID, newCount int32) (*ResizeResult, error) {
	if newCount < 0 {
		return nil, ErrDomainValidation
	}

	var result ResizeResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// the lot lock serializes concurrent resizes of the same lot
		current, err := tx.Lots().LockByID(ctx, lotID)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrLotNotFound)
			case infra.IsKind(err, infra.KindLockTimeout):
				return errs.Mark(err, ErrConflict)
			default:
				return errs.Mark(err, ErrDatabaseFailure)
			}
		}

		result = ResizeResult{LotID: lotID}
		highest := current.HighestSpotNumber

		switch {
		case newCount > current.SpotCount:
			delta := newCount - current.SpotCount
			if err := c.grow(ctx, tx, lotID, highest, delta); err != nil {
				return err
			}
			highest += delta
			result.Added = delta
		case newCount < current.SpotCount:
			delta := current.SpotCount - newCount
			if err := c.shrink(ctx, tx, lotID, delta); err != nil {
				return err
			}
			result.Removed = delta
		default:
			return nil
		}

		if err := tx.Lots().SetCapacity(ctx, lotID, newCount, highest); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidateLot(ctx, lotID)
	return &result, nil
}

// grow numbers new spots above the lot's historical maximum, not the highest
// surviving row: a shrink deletes rows but the numbers stay burned, so a
// deleted number is never reused for a different physical spot.
func (c *capacityCommandsImpl) grow(ctx context.Context, tx shared.Tx, lotID uuid.UUID, highest, delta int32) error {
	numbers := numberRange(highest+1, delta)
	if err := tx.Spots().CreateBatch(ctx, lotID, numbers); err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}
	return nil
}

// shrink is all-or-nothing: if any removal candidate is occupied the whole
// resize fails and no spot is deleted.
func (c *capacityCommandsImpl) shrink(ctx context.Context, tx shared.Tx, lotID uuid.UUID, delta int32) error {
	candidates, err := tx.Spots().LockHighestNumbered(ctx, lotID, delta)
	if err != nil {
		if infra.IsKind(err, infra.KindLockTimeout) {
			return errs.Mark(err, ErrConflict)
		}
		return errs.Mark(err, ErrDatabaseFailure)
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, cand := range candidates {
		if cand.Status == spot.StatusOccupied {
			return ErrCapacityConflict
		}
		ids = append(ids, cand.ID)
	}

	if err := tx.Spots().DeleteByIDs(ctx, ids); err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}
	return nil
}

func (c *capacityCommandsImpl) DeleteLot(ctx context.Context, lotID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Lots().LockByID(ctx, lotID); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrLotNotFound)
			case infra.IsKind(err, infra.KindLockTimeout):
				return errs.Mark(err, ErrConflict)
			default:
				return errs.Mark(err, ErrDatabaseFailure)
			}
		}

		occupied, err := tx.Spots().CountOccupied(ctx, lotID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		if occupied > 0 {
			return ErrLotOccupied
		}

		// an active reservation blocks deletion even if its spot somehow reads
		// available; occupancy and the reservation ledger are checked separately
		active, err := tx.Reservations().CountActiveByLot(ctx, lotID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		if active > 0 {
			return ErrLotOccupied
		}

		if err := tx.Spots().DeleteByLotID(ctx, lotID); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		if err := tx.Lots().Delete(ctx, lotID); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateLot(ctx, lotID)
	return nil
}

func (c *capacityCommandsImpl) invalidateLot(ctx context.Context, lotID uuid.UUID) {
	if err := c.cache.InvalidateLot(ctx, lotID); err != nil {
		slog.Warn("availability invalidation failed", "lot_id", lotID, "error", err.Error())
	}
	if err := c.statsCache.Invalidate(ctx); err != nil {
		slog.Warn("stats invalidation failed", "error", err.Error())
	}
}

func (c *capacityCommandsImpl) invalidateAll(ctx context.Context) {
	if err := c.cache.InvalidateAll(ctx); err != nil {
		slog.Warn("availability invalidation failed", "scope", "all", "error", err.Error())
	}
	if err := c.statsCache.Invalidate(ctx); err != nil {
		slog.Warn("stats invalidation failed", "error", err.Error())
	}
}

func numberRange(start, count int32) []int32 {
	numbers := make([]int32, count)
	for i := range numbers {
		numbers[i] = start + int32(i)
	}
	return numbers
}
