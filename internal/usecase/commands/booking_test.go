//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/domain/spot"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/shared"
	"parkhub/tests/common/builder"
	sharedmock "parkhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	lots         *sharedmock.MockLotRepository
	spots        *sharedmock.MockSpotRepository
	reservations *sharedmock.MockReservationRepository
	cache        *sharedmock.MockAvailabilityCache
	statsCache   *sharedmock.MockStatsCache
	clock        *clock.MockClock
}

func newBookingMocks(ctrl *gomock.Controller) *bookingMocks {
	m := &bookingMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		lots:         sharedmock.NewMockLotRepository(ctrl),
		spots:        sharedmock.NewMockSpotRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		cache:        sharedmock.NewMockAvailabilityCache(ctrl),
		statsCache:   sharedmock.NewMockStatsCache(ctrl),
		clock:        clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
	}

	m.tx.EXPECT().Lots().Return(m.lots).AnyTimes()
	m.tx.EXPECT().Spots().Return(m.spots).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return m
}

func (m *bookingMocks) newCommands() commands.BookingCommands {
	return commands.NewBookingCommands(m.uow, m.cache, m.statsCache, m.clock)
}

func (m *bookingMocks) expectInvalidation(lotID uuid.UUID) {
	m.cache.EXPECT().InvalidateLot(gomock.Any(), lotID).Return(nil)
	m.statsCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func lockTimeoutErr() error {
	return infra.WrapRepoErr("lock timeout", nil, infra.KindLockTimeout)
}

func TestBook(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: claims lowest available spot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		lotSnap := builder.NewLotBuilder().BuildSnapshot()
		spotSnap := &shared.SpotSnapshot{
			ID:     uuid.New(),
			LotID:  lotSnap.ID,
			Number: 3,
			Status: spot.StatusAvailable,
		}

		m.reservations.EXPECT().HasActiveByUser(gomock.Any(), userID).Return(false, nil)
		m.lots.EXPECT().FindByID(gomock.Any(), lotSnap.ID).Return(lotSnap, nil)
		m.spots.EXPECT().ClaimLowestAvailable(gomock.Any(), lotSnap.ID).Return(spotSnap, nil)
		m.spots.EXPECT().SetStatus(gomock.Any(), spotSnap.ID, spot.StatusOccupied).Return(nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
				assert.Equal(t, spotSnap.ID, r.SpotID())
				assert.Equal(t, userID, r.UserID())
				assert.Equal(t, m.clock.Now(), r.StartedAt())
				assert.True(t, r.IsActive())
				return nil
			})
		m.expectInvalidation(lotSnap.ID)

		result, err := m.newCommands().Book(ctx, userID, lotSnap.ID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, lotSnap.ID, result.LotID)
		assert.Equal(t, spotSnap.ID, result.SpotID)
		assert.Equal(t, int32(3), result.SpotNumber)
		assert.Equal(t, m.clock.Now(), result.StartedAt)
	})

	t.Run("error: user already holds an active reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		m.reservations.EXPECT().HasActiveByUser(gomock.Any(), userID).Return(true, nil)

		result, err := m.newCommands().Book(ctx, userID, uuid.New())
		require.ErrorIs(t, err, commands.ErrAlreadyActive)
		assert.Nil(t, result)
	})

	t.Run("error: duplicate active insert maps to ErrAlreadyActive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// two requests from the same user pass the fast check together; the
		// loser hits the partial unique index and must surface as a conflict,
		// not a database failure
		m := newBookingMocks(ctrl)
		lotSnap := builder.NewLotBuilder().BuildSnapshot()
		spotSnap := &shared.SpotSnapshot{
			ID:     uuid.New(),
			LotID:  lotSnap.ID,
			Number: 1,
			Status: spot.StatusAvailable,
		}

		m.reservations.EXPECT().HasActiveByUser(gomock.Any(), userID).Return(false, nil)
		m.lots.EXPECT().FindByID(gomock.Any(), lotSnap.ID).Return(lotSnap, nil)
		m.spots.EXPECT().ClaimLowestAvailable(gomock.Any(), lotSnap.ID).Return(spotSnap, nil)
		m.spots.EXPECT().SetStatus(gomock.Any(), spotSnap.ID, spot.StatusOccupied).Return(nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateKeyErr())

		result, err := m.newCommands().Book(ctx, userID, lotSnap.ID)
		require.ErrorIs(t, err, commands.ErrAlreadyActive)
		assert.Nil(t, result)
	})

	t.Run("error: unknown lot maps to ErrLotNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		lotID := uuid.New()
		m.reservations.EXPECT().HasActiveByUser(gomock.Any(), userID).Return(false, nil)
		m.lots.EXPECT().FindByID(gomock.Any(), lotID).Return(nil, notFoundErr())

		_, err := m.newCommands().Book(ctx, userID, lotID)
		require.ErrorIs(t, err, commands.ErrLotNotFound)
	})

	t.Run("error: full lot maps to ErrNoCapacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		lotSnap := builder.NewLotBuilder().BuildSnapshot()
		m.reservations.EXPECT().HasActiveByUser(gomock.Any(), userID).Return(false, nil)
		m.lots.EXPECT().FindByID(gomock.Any(), lotSnap.ID).Return(lotSnap, nil)
		m.spots.EXPECT().ClaimLowestAvailable(gomock.Any(), lotSnap.ID).Return(nil, notFoundErr())

		_, err := m.newCommands().Book(ctx, userID, lotSnap.ID)
		require.ErrorIs(t, err, commands.ErrNoCapacity)
	})

	t.Run("error: lock timeout maps to ErrConflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		lotSnap := builder.NewLotBuilder().BuildSnapshot()
		m.reservations.EXPECT().HasActiveByUser(gomock.Any(), userID).Return(false, nil)
		m.lots.EXPECT().FindByID(gomock.Any(), lotSnap.ID).Return(lotSnap, nil)
		m.spots.EXPECT().ClaimLowestAvailable(gomock.Any(), lotSnap.ID).Return(nil, lockTimeoutErr())

		_, err := m.newCommands().Book(ctx, userID, lotSnap.ID)
		require.ErrorIs(t, err, commands.ErrConflict)
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: frees the spot and bills at the lot's current price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		lotSnap := builder.NewLotBuilder().WithPrice(300).BuildSnapshot()

		startedAt := m.clock.Now()
		m.clock.Advance(90 * time.Minute) // 2 started hours

		res := reservation.NewReservation(uuid.New(), userID, startedAt)
		spotSnap := &shared.SpotSnapshot{
			ID:     res.SpotID(),
			LotID:  lotSnap.ID,
			Number: 5,
			Status: spot.StatusOccupied,
		}

		m.reservations.EXPECT().LockActiveByIDAndOwner(gomock.Any(), res.ID(), userID).Return(res, nil)
		m.spots.EXPECT().LockByID(gomock.Any(), res.SpotID()).Return(spotSnap, nil)
		m.lots.EXPECT().FindByID(gomock.Any(), lotSnap.ID).Return(lotSnap, nil)
		m.reservations.EXPECT().Complete(gomock.Any(), res).Return(nil)
		m.spots.EXPECT().SetStatus(gomock.Any(), spotSnap.ID, spot.StatusAvailable).Return(nil)
		m.expectInvalidation(lotSnap.ID)

		result, err := m.newCommands().Release(ctx, userID, res.ID())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, res.ID(), result.ReservationID)
		assert.Equal(t, m.clock.Now(), result.EndedAt)
		assert.Equal(t, int64(90), result.DurationMinutes)
		assert.Equal(t, int64(2), result.BilledHours)
		assert.Equal(t, int64(600), result.CostCents)
		assert.False(t, res.IsActive())
	})

	t.Run("error: second release of the same reservation is NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		reservationID := uuid.New()
		m.reservations.EXPECT().LockActiveByIDAndOwner(gomock.Any(), reservationID, userID).
			Return(nil, notFoundErr())

		_, err := m.newCommands().Release(ctx, userID, reservationID)
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("error: another user's reservation is NotFound, not Forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		otherUsers := reservation.NewReservation(uuid.New(), uuid.New(), m.clock.Now())
		m.reservations.EXPECT().LockActiveByIDAndOwner(gomock.Any(), otherUsers.ID(), userID).
			Return(nil, notFoundErr())

		_, err := m.newCommands().Release(ctx, userID, otherUsers.ID())
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("error: lock timeout maps to ErrConflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		reservationID := uuid.New()
		m.reservations.EXPECT().LockActiveByIDAndOwner(gomock.Any(), reservationID, userID).
			Return(nil, lockTimeoutErr())

		_, err := m.newCommands().Release(ctx, userID, reservationID)
		require.ErrorIs(t, err, commands.ErrConflict)
	})
}
