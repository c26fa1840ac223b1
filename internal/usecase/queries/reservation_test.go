//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/builder"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner reads their own reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockReservationStore(ctrl)
		view := builder.NewReservationBuilder().BuildView()

		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewReservationQueries(store).GetByID(ctx, view.UserID, "user", view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("success: admin reads anyone's reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockReservationStore(ctrl)
		view := builder.NewReservationBuilder().BuildView()

		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewReservationQueries(store).GetByID(ctx, uuid.New(), "admin", view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: another user is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockReservationStore(ctrl)
		view := builder.NewReservationBuilder().BuildView()

		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewReservationQueries(store).GetByID(ctx, uuid.New(), "user", view.ID)
		require.ErrorIs(t, err, queries.ErrForbidden)
	})
}

func TestReservationHistoryByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success: non-positive limit falls back to the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockReservationStore(ctrl)
		userID := uuid.New()
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().WithUserID(userID).BuildView(),
		}

		store.EXPECT().FindByUserID(gomock.Any(), userID, int32(50)).Return(views, nil)

		got, err := queries.NewReservationQueries(store).HistoryByUser(ctx, userID, 0)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("success: explicit limit is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockReservationStore(ctrl)
		userID := uuid.New()

		store.EXPECT().FindByUserID(gomock.Any(), userID, int32(5)).Return(nil, nil)

		_, err := queries.NewReservationQueries(store).HistoryByUser(ctx, userID, 5)
		require.NoError(t, err)
	})
}
