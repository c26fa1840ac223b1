//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkhub/internal/infra"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/builder"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLotListSpots(t *testing.T) {
	ctx := context.Background()

	t.Run("success: lists the lot's spots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockLotStore(ctrl)
		lot := builder.NewLotBuilder()
		spots := []*queries.SpotView{
			{ID: uuid.New(), LotID: lot.ID, Number: 1, Status: "available"},
			{ID: uuid.New(), LotID: lot.ID, Number: 2, Status: "occupied"},
		}

		store.EXPECT().FindByID(gomock.Any(), lot.ID).Return(lot.BuildView(), nil)
		store.EXPECT().FindSpotsByLotID(gomock.Any(), lot.ID).Return(spots, nil)

		got, err := queries.NewLotQueries(store).ListSpots(ctx, lot.ID)
		require.NoError(t, err)
		assert.Equal(t, spots, got)
	})

	t.Run("error: unknown lot is NOT_FOUND, not an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockLotStore(ctrl)
		lotID := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), lotID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := queries.NewLotQueries(store).ListSpots(ctx, lotID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
