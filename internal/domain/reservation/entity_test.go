//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillableHours(t *testing.T) {
	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected int64
	}{
		{name: "zero elapsed bills zero", elapsed: 0, expected: 0},
		{name: "negative elapsed bills zero", elapsed: -30 * time.Minute, expected: 0},
		{name: "one second rounds up to one hour", elapsed: time.Second, expected: 1},
		{name: "59 minutes rounds up to one hour", elapsed: 59 * time.Minute, expected: 1},
		{name: "exactly one hour bills one hour", elapsed: time.Hour, expected: 1},
		{name: "one hour and one second rounds up to two", elapsed: time.Hour + time.Second, expected: 2},
		{name: "90 minutes rounds up to two hours", elapsed: 90 * time.Minute, expected: 2},
		{name: "24 hours bills 24 hours", elapsed: 24 * time.Hour, expected: 24},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reservation.BillableHours(tc.elapsed))
		})
	}
}

func TestElapsedMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected int64
	}{
		{name: "zero elapsed is zero", elapsed: 0, expected: 0},
		{name: "negative elapsed is zero", elapsed: -30 * time.Minute, expected: 0},
		{name: "59 seconds floors to zero", elapsed: 59 * time.Second, expected: 0},
		{name: "90 seconds floors to one", elapsed: 90 * time.Second, expected: 1},
		{name: "90 minutes is 90", elapsed: 90 * time.Minute, expected: 90},
		{name: "24 hours is 1440", elapsed: 24 * time.Hour, expected: 1440},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reservation.ElapsedMinutes(tc.elapsed))
		})
	}
}

func TestCost(t *testing.T) {
	testCases := []struct {
		name          string
		elapsed       time.Duration
		priceCents    int64
		expectedCents int64
	}{
		{name: "two started hours at 250", elapsed: 61 * time.Minute, priceCents: 250, expectedCents: 500},
		{name: "free lot bills zero", elapsed: 5 * time.Hour, priceCents: 0, expectedCents: 0},
		{name: "zero elapsed bills zero", elapsed: 0, priceCents: 250, expectedCents: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCents, reservation.Cost(tc.elapsed, tc.priceCents))
		})
	}
}

func TestNewReservation(t *testing.T) {
	spotID := uuid.New()
	userID := uuid.New()
	startedAt := time.Now()

	res := reservation.NewReservation(spotID, userID, startedAt)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, spotID, res.SpotID())
	assert.Equal(t, userID, res.UserID())
	assert.Equal(t, startedAt, res.StartedAt())
	assert.True(t, res.IsActive())
	assert.Nil(t, res.EndedAt())
	assert.Nil(t, res.CostCents())
}

func TestComplete(t *testing.T) {
	t.Run("bills elapsed time at the given price", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		res := reservation.NewReservation(uuid.New(), uuid.New(), start)

		endedAt := start.Add(2*time.Hour + 15*time.Minute)
		require.NoError(t, res.Complete(endedAt, 300))

		assert.Equal(t, reservation.StatusCompleted, res.Status())
		require.NotNil(t, res.EndedAt())
		assert.Equal(t, endedAt, *res.EndedAt())
		require.NotNil(t, res.CostCents())
		assert.Equal(t, int64(900), *res.CostCents()) // 3 started hours
	})

	t.Run("release before one full hour bills one hour", func(t *testing.T) {
		start := time.Now()
		res := reservation.NewReservation(uuid.New(), uuid.New(), start)

		require.NoError(t, res.Complete(start.Add(time.Minute), 250))

		require.NotNil(t, res.CostCents())
		assert.Equal(t, int64(250), *res.CostCents())
	})

	t.Run("rejects a second completion", func(t *testing.T) {
		res := reservation.NewReservation(uuid.New(), uuid.New(), time.Now())
		require.NoError(t, res.Complete(time.Now(), 250))

		err := res.Complete(time.Now(), 250)
		require.ErrorIs(t, err, reservation.ErrNotActive)
	})

	t.Run("rejects a completed reconstruction", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().
			AsCompleted(time.Now(), 500).
			BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, res.Complete(time.Now(), 250), reservation.ErrNotActive)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		res := reservation.NewReservation(uuid.New(), uuid.New(), time.Now())

		err := res.Complete(time.Now(), -1)
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
		assert.True(t, res.IsActive(), "failed completion must not change state")
	})
}

func TestNewStatus(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "active", raw: "active"},
		{name: "completed", raw: "completed"},
		{name: "unknown status", raw: "cancelled", errIs: reservation.ErrInvalidStatus},
		{name: "empty status", raw: "", errIs: reservation.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := reservation.NewStatus(tc.raw)
			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.raw, status.String())
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
