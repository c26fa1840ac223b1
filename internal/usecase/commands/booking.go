package commands

import (
	"context"
	"log/slog"
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/domain/spot"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResult struct {
	ReservationID uuid.UUID
	LotID         uuid.UUID
	SpotID        uuid.UUID
	SpotNumber    int32
	StartedAt     time.Time
}

type ReleaseResult struct {
	ReservationID   uuid.UUID
	EndedAt         time.Time
	CostCents       int64
	DurationMinutes int64
	BilledHours     int64
}

type BookingCommands interface {
	// Book claims the lowest-numbered available spot in the lot for the user.
	// A user with an active reservation anywhere is rejected before any lock
	// is taken.
	Book(ctx context.Context, userID, lotID uuid.UUID) (*BookingResult, error)
	// Release completes the user's reservation, frees the spot and bills the
	// elapsed time at the lot's current hourly price. A second release of the
	// same reservation fails with ErrReservationNotFound.
	Release(ctx context.Context, userID, reservationID uuid.UUID) (*ReleaseResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	cache      shared.AvailabilityCache
	statsCache shared.StatsCache
	clock      clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	cache shared.AvailabilityCache,
	statsCache shared.StatsCache,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		cache:      cache,
		statsCache: statsCache,
		clock:      clk,
	}
}

func (b *bookingCommandsImpl) Book(ctx context.Context, userID, lotID uuid.UUID) (*BookingResult, error) {
	var result BookingResult

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Reservations().HasActiveByUser(ctx, userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		if active {
			return ErrAlreadyActive
		}

		// fail fast with a lot-level NotFound before touching spot rows
		if _, err := tx.Lots().FindByID(ctx, lotID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrLotNotFound)
			}
			return errs.Mark(err, ErrDatabaseFailure)
		}

		claimed, err := tx.Spots().ClaimLowestAvailable(ctx, lotID)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrNoCapacity)
			case infra.IsKind(err, infra.KindLockTimeout):
				return errs.Mark(err, ErrConflict)
			default:
				return errs.Mark(err, ErrDatabaseFailure)
			}
		}

		if err := tx.Spots().SetStatus(ctx, claimed.ID, spot.StatusOccupied); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}

		res := reservation.NewReservation(claimed.ID, userID, b.clock.Now())
		if err := tx.Reservations().Create(ctx, res); err != nil {
			// the partial unique index on active reservations re-validates the
			// one-per-user rule when two requests pass the fast check together
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrAlreadyActive)
			}
			return errs.Mark(err, ErrDatabaseFailure)
		}

		result = BookingResult{
			ReservationID: res.ID(),
			LotID:         lotID,
			SpotID:        claimed.ID,
			SpotNumber:    claimed.Number,
			StartedAt:     res.StartedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.invalidate(ctx, lotID)
	return &result, nil
}

func (b *bookingCommandsImpl) Release(ctx context.Context, userID, reservationID uuid.UUID) (*ReleaseResult, error) {
	var result ReleaseResult
	var lotID uuid.UUID

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockActiveByIDAndOwner(ctx, reservationID, userID)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrReservationNotFound)
			case infra.IsKind(err, infra.KindLockTimeout):
				return errs.Mark(err, ErrConflict)
			default:
				return errs.Mark(err, ErrDatabaseFailure)
			}
		}

		claimed, err := tx.Spots().LockByID(ctx, res.SpotID())
		if err != nil {
			if infra.IsKind(err, infra.KindLockTimeout) {
				return errs.Mark(err, ErrConflict)
			}
			return errs.Mark(err, ErrDatabaseFailure)
		}
		lotID = claimed.LotID

		// the lot's price at release time is what gets billed
		owningLot, err := tx.Lots().FindByID(ctx, claimed.LotID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}

		endedAt := b.clock.Now()
		if err := res.Complete(endedAt, owningLot.PricePerHourCents); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().Complete(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		if err := tx.Spots().SetStatus(ctx, claimed.ID, spot.StatusAvailable); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}

		elapsed := endedAt.Sub(res.StartedAt())
		result = ReleaseResult{
			ReservationID:   res.ID(),
			EndedAt:         endedAt,
			CostCents:       *res.CostCents(),
			DurationMinutes: reservation.ElapsedMinutes(elapsed),
			BilledHours:     reservation.BillableHours(elapsed),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.invalidate(ctx, lotID)
	return &result, nil
}

// invalidate runs after commit so readers can never cache pre-commit state.
// Failures only extend staleness up to the TTL, so they are logged, not
// returned.
func (b *bookingCommandsImpl) invalidate(ctx context.Context, lotID uuid.UUID) {
	if err := b.cache.InvalidateLot(ctx, lotID); err != nil {
		slog.Warn("availability invalidation failed", "lot_id", lotID, "error", err.Error())
	}
	if err := b.statsCache.Invalidate(ctx); err != nil {
		slog.Warn("stats invalidation failed", "error", err.Error())
	}
}
