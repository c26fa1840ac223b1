//go:build unit

package spot_test

import (
	"testing"

	"parkhub/internal/domain/spot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpot(t *testing.T) {
	lotID := uuid.New()

	t.Run("starts available", func(t *testing.T) {
		s, err := spot.NewSpot(lotID, 1)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, lotID, s.LotID())
		assert.Equal(t, int32(1), s.Number())
		assert.True(t, s.IsAvailable())
	})

	t.Run("rejects non-positive numbers", func(t *testing.T) {
		for _, n := range []int32{0, -1} {
			_, err := spot.NewSpot(lotID, n)
			require.ErrorIs(t, err, spot.ErrInvalidNumber)
		}
	})
}

func TestOccupyAndFree(t *testing.T) {
	newSpot := func(t *testing.T) *spot.Spot {
		t.Helper()
		s, err := spot.NewSpot(uuid.New(), 1)
		require.NoError(t, err)
		return s
	}

	t.Run("occupy then free round trip", func(t *testing.T) {
		s := newSpot(t)

		require.NoError(t, s.Occupy())
		assert.Equal(t, spot.StatusOccupied, s.Status())

		require.NoError(t, s.Free())
		assert.True(t, s.IsAvailable())
	})

	t.Run("double occupy is rejected", func(t *testing.T) {
		s := newSpot(t)
		require.NoError(t, s.Occupy())

		require.ErrorIs(t, s.Occupy(), spot.ErrAlreadyOccupied)
	})

	t.Run("freeing an available spot is rejected", func(t *testing.T) {
		s := newSpot(t)

		require.ErrorIs(t, s.Free(), spot.ErrNotOccupied)
	})
}

func TestNewStatus(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "available", raw: "available"},
		{name: "occupied", raw: "occupied"},
		{name: "unknown status", raw: "reserved", errIs: spot.ErrInvalidStatus},
		{name: "empty status", raw: "", errIs: spot.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := spot.NewStatus(tc.raw)
			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.raw, status.String())
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
