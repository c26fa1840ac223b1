//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parkhub/internal/domain/spot"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/shared"
	"parkhub/tests/common/builder"
	sharedmock "parkhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type capacityMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	lots         *sharedmock.MockLotRepository
	spots        *sharedmock.MockSpotRepository
	reservations *sharedmock.MockReservationRepository
	cache        *sharedmock.MockAvailabilityCache
	statsCache   *sharedmock.MockStatsCache
}

func newCapacityMocks(ctrl *gomock.Controller) *capacityMocks {
	m := &capacityMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		lots:         sharedmock.NewMockLotRepository(ctrl),
		spots:        sharedmock.NewMockSpotRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		cache:        sharedmock.NewMockAvailabilityCache(ctrl),
		statsCache:   sharedmock.NewMockStatsCache(ctrl),
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

func (m *capacityMocks) newCommands() commands.CapacityCommands {
	return commands.NewCapacityCommands(m.uow, m.cache, m.statsCache)
}

func (m *capacityMocks) expectLotInvalidation(lotID uuid.UUID) {
	m.cache.EXPECT().InvalidateLot(gomock.Any(), lotID).Return(nil)
	m.statsCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
}

func TestCreateLot(t *testing.T) {
	ctx := context.Background()

	t.Run("success: creates the lot and numbers spots from 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		req := builder.NewLotBuilder().WithSpotCount(3).BuildCreateRequestDTO()

		m.lots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.spots.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), []int32{1, 2, 3}).Return(nil)
		m.cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)
		m.statsCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		lotID, err := m.newCommands().CreateLot(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, lotID)
	})

	t.Run("success: zero spots creates no spot rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		req := builder.NewLotBuilder().WithSpotCount(0).BuildCreateRequestDTO()

		m.lots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)
		m.statsCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		_, err := m.newCommands().CreateLot(ctx, req)
		require.NoError(t, err)
	})

	t.Run("error: invalid lot data never reaches storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		req := builder.NewLotBuilder().WithName("").BuildCreateRequestDTO()

		_, err := m.newCommands().CreateLot(ctx, req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdateLot(t *testing.T) {
	ctx := context.Background()

	t.Run("success: patches only the provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().BuildSnapshot()
		newPrice := int64(400)

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.lots.EXPECT().UpdateProfile(gomock.Any(), current.ID,
			current.Name, current.Address, current.Pincode, newPrice).Return(nil)
		m.expectLotInvalidation(current.ID)

		err := m.newCommands().UpdateLot(ctx, current.ID, reqdto.UpdateLotRequest{
			PricePerHourCents: &newPrice,
		})
		require.NoError(t, err)
	})

	t.Run("error: unknown lot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		lotID := uuid.New()
		m.lots.EXPECT().LockByID(gomock.Any(), lotID).Return(nil, notFoundErr())

		err := m.newCommands().UpdateLot(ctx, lotID, reqdto.UpdateLotRequest{})
		require.ErrorIs(t, err, commands.ErrLotNotFound)
	})

	t.Run("error: blank name patch fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().BuildSnapshot()
		empty := ""

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)

		err := m.newCommands().UpdateLot(ctx, current.ID, reqdto.UpdateLotRequest{Name: &empty})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestResize(t *testing.T) {
	ctx := context.Background()

	t.Run("success: growth numbers spots above the historical maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		// earlier shrinks pushed the historical maximum past the live count
		current := builder.NewLotBuilder().WithSpotCount(5).WithHighestSpotNumber(12).BuildSnapshot()

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.spots.EXPECT().CreateBatch(gomock.Any(), current.ID, []int32{13, 14, 15}).Return(nil)
		m.lots.EXPECT().SetCapacity(gomock.Any(), current.ID, int32(8), int32(15)).Return(nil)
		m.expectLotInvalidation(current.ID)

		result, err := m.newCommands().Resize(ctx, current.ID, 8)
		require.NoError(t, err)
		assert.Equal(t, int32(3), result.Added)
		assert.Equal(t, int32(0), result.Removed)
	})

	t.Run("success: growth after a shrink never reuses a deleted number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		// lot was created with 5 spots, shrunk to 3; spots 4 and 5 are gone
		// but their numbers stay burned
		current := builder.NewLotBuilder().WithSpotCount(3).WithHighestSpotNumber(5).BuildSnapshot()

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.spots.EXPECT().CreateBatch(gomock.Any(), current.ID, []int32{6}).Return(nil)
		m.lots.EXPECT().SetCapacity(gomock.Any(), current.ID, int32(4), int32(6)).Return(nil)
		m.expectLotInvalidation(current.ID)

		result, err := m.newCommands().Resize(ctx, current.ID, 4)
		require.NoError(t, err)
		assert.Equal(t, int32(1), result.Added)
	})

	t.Run("success: shrink removes the highest-numbered free spots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().WithSpotCount(5).BuildSnapshot()
		candidates := []shared.SpotSnapshot{
			{ID: uuid.New(), LotID: current.ID, Number: 5, Status: spot.StatusAvailable},
			{ID: uuid.New(), LotID: current.ID, Number: 4, Status: spot.StatusAvailable},
		}

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.spots.EXPECT().LockHighestNumbered(gomock.Any(), current.ID, int32(2)).Return(candidates, nil)
		m.spots.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{candidates[0].ID, candidates[1].ID}).Return(nil)
		// the historical maximum survives the shrink
		m.lots.EXPECT().SetCapacity(gomock.Any(), current.ID, int32(3), int32(5)).Return(nil)
		m.expectLotInvalidation(current.ID)

		result, err := m.newCommands().Resize(ctx, current.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, int32(0), result.Added)
		assert.Equal(t, int32(2), result.Removed)
	})

	t.Run("error: shrink is all-or-nothing when a candidate is occupied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().WithSpotCount(5).BuildSnapshot()
		candidates := []shared.SpotSnapshot{
			{ID: uuid.New(), LotID: current.ID, Number: 5, Status: spot.StatusAvailable},
			{ID: uuid.New(), LotID: current.ID, Number: 4, Status: spot.StatusOccupied},
		}

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.spots.EXPECT().LockHighestNumbered(gomock.Any(), current.ID, int32(2)).Return(candidates, nil)
		// no DeleteByIDs, no SetCapacity: the whole resize is rejected

		_, err := m.newCommands().Resize(ctx, current.ID, 3)
		require.ErrorIs(t, err, commands.ErrCapacityConflict)
	})

	t.Run("success: unchanged count is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().WithSpotCount(5).BuildSnapshot()

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.expectLotInvalidation(current.ID)

		result, err := m.newCommands().Resize(ctx, current.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, int32(0), result.Added)
		assert.Equal(t, int32(0), result.Removed)
	})

	t.Run("error: negative target count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)

		_, err := m.newCommands().Resize(ctx, uuid.New(), -1)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("error: unknown lot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		lotID := uuid.New()
		m.lots.EXPECT().LockByID(gomock.Any(), lotID).Return(nil, notFoundErr())

		_, err := m.newCommands().Resize(ctx, lotID, 5)
		require.ErrorIs(t, err, commands.ErrLotNotFound)
	})
}

func TestDeleteLot(t *testing.T) {
	ctx := context.Background()

	t.Run("success: removes spots then the lot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().BuildSnapshot()

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.spots.EXPECT().CountOccupied(gomock.Any(), current.ID).Return(int64(0), nil)
		m.reservations.EXPECT().CountActiveByLot(gomock.Any(), current.ID).Return(int64(0), nil)
		m.spots.EXPECT().DeleteByLotID(gomock.Any(), current.ID).Return(nil)
		m.lots.EXPECT().Delete(gomock.Any(), current.ID).Return(nil)
		m.expectLotInvalidation(current.ID)

		require.NoError(t, m.newCommands().DeleteLot(ctx, current.ID))
	})

	t.Run("error: refuses while any spot is occupied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().BuildSnapshot()

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.spots.EXPECT().CountOccupied(gomock.Any(), current.ID).Return(int64(2), nil)

		err := m.newCommands().DeleteLot(ctx, current.ID)
		require.ErrorIs(t, err, commands.ErrLotOccupied)
	})

	t.Run("error: refuses while any reservation is still active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCapacityMocks(ctrl)
		current := builder.NewLotBuilder().BuildSnapshot()

		m.lots.EXPECT().LockByID(gomock.Any(), current.ID).Return(current, nil)
		m.spots.EXPECT().CountOccupied(gomock.Any(), current.ID).Return(int64(0), nil)
		m.reservations.EXPECT().CountActiveByLot(gomock.Any(), current.ID).Return(int64(1), nil)

		err := m.newCommands().DeleteLot(ctx, current.ID)
		require.ErrorIs(t, err, commands.ErrLotOccupied)
	})
}
