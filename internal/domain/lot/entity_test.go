//go:build unit

package lot_test

import (
	"testing"

	"parkhub/internal/domain/lot"
	"parkhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LotBuilder)
	errIs  error
}

func TestLot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Central Garage", actual.Name())
		assert.Equal(t, int64(250), actual.PricePerHourCents())
		assert.Equal(t, int32(10), actual.SpotCount())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.LotBuilder) { b.WithName("") },
				errIs:  lot.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.LotBuilder) { b.WithName("   ") },
				errIs:  lot.ErrEmptyName,
			},
			{
				name:   "single character name",
				mutate: func(b *builder.LotBuilder) { b.WithName("A") },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price is a free lot",
				mutate: func(b *builder.LotBuilder) { b.WithPrice(0) },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.LotBuilder) { b.WithPrice(-1) },
				errIs:  lot.ErrNegativePrice,
			},
		})
	})

	t.Run("spot count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero spots is an empty lot",
				mutate: func(b *builder.LotBuilder) { b.WithSpotCount(0) },
			},
			{
				name:   "negative spot count",
				mutate: func(b *builder.LotBuilder) { b.WithSpotCount(-1) },
				errIs:  lot.ErrNegativeSpotCount,
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		actual, err := builder.NewLotBuilder().WithName("  East Deck  ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "East Deck", actual.Name())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		lot1, err1 := builder.NewLotBuilder().BuildDomain()
		lot2, err2 := builder.NewLotBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, lot1.ID(), lot2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewLotBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
