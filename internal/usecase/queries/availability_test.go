//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"
	"parkhub/tests/common/builder"
	queriesmock "parkhub/tests/mock/queries"
	sharedmock "parkhub/tests/mock/shared"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityGetLot(t *testing.T) {
	ctx := context.Background()

	t.Run("success: cache hit never touches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAvailabilityStore(ctrl)
		cache := sharedmock.NewMockAvailabilityCache(ctrl)
		cached := builder.NewLotBuilder().WithOccupiedSpots(4).BuildAvailability()

		cache.EXPECT().GetLot(gomock.Any(), cached.LotID).Return(cached, true, nil)

		got, err := queries.NewAvailabilityQueries(store, cache).GetLot(ctx, cached.LotID)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("success: cache miss reads the store and backfills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAvailabilityStore(ctrl)
		cache := sharedmock.NewMockAvailabilityCache(ctrl)
		fresh := builder.NewLotBuilder().BuildAvailability()

		cache.EXPECT().GetLot(gomock.Any(), fresh.LotID).Return(nil, false, nil)
		store.EXPECT().FindLot(gomock.Any(), fresh.LotID).Return(fresh, nil)
		cache.EXPECT().SetLot(gomock.Any(), fresh).Return(nil)

		got, err := queries.NewAvailabilityQueries(store, cache).GetLot(ctx, fresh.LotID)
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})

	t.Run("success: cache failure degrades to the authoritative read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAvailabilityStore(ctrl)
		cache := sharedmock.NewMockAvailabilityCache(ctrl)
		fresh := builder.NewLotBuilder().BuildAvailability()

		cache.EXPECT().GetLot(gomock.Any(), fresh.LotID).Return(nil, false, errors.New("redis down"))
		store.EXPECT().FindLot(gomock.Any(), fresh.LotID).Return(fresh, nil)
		cache.EXPECT().SetLot(gomock.Any(), fresh).Return(errors.New("redis down"))

		got, err := queries.NewAvailabilityQueries(store, cache).GetLot(ctx, fresh.LotID)
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})

	t.Run("error: store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAvailabilityStore(ctrl)
		cache := sharedmock.NewMockAvailabilityCache(ctrl)
		lot := builder.NewLotBuilder()

		cache.EXPECT().GetLot(gomock.Any(), lot.ID).Return(nil, false, nil)
		store.EXPECT().FindLot(gomock.Any(), lot.ID).Return(nil, errors.New("query failed"))

		_, err := queries.NewAvailabilityQueries(store, cache).GetLot(ctx, lot.ID)
		require.Error(t, err)
	})
}

func TestAvailabilityListLots(t *testing.T) {
	ctx := context.Background()

	t.Run("success: cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAvailabilityStore(ctrl)
		cache := sharedmock.NewMockAvailabilityCache(ctrl)
		cached := []shared.LotAvailability{
			*builder.NewLotBuilder().WithName("North Deck").BuildAvailability(),
			*builder.NewLotBuilder().WithName("South Deck").BuildAvailability(),
		}

		cache.EXPECT().GetAll(gomock.Any()).Return(cached, true, nil)

		got, err := queries.NewAvailabilityQueries(store, cache).ListLots(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("success: cache miss backfills the full listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAvailabilityStore(ctrl)
		cache := sharedmock.NewMockAvailabilityCache(ctrl)
		fresh := []shared.LotAvailability{*builder.NewLotBuilder().BuildAvailability()}

		cache.EXPECT().GetAll(gomock.Any()).Return(nil, false, nil)
		store.EXPECT().FindAll(gomock.Any()).Return(fresh, nil)
		cache.EXPECT().SetAll(gomock.Any(), fresh).Return(nil)

		got, err := queries.NewAvailabilityQueries(store, cache).ListLots(ctx)
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})
}
