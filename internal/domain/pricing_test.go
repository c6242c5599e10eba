package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/association-manager/association-api/internal/domain"
)

func TestComputeQuote(t *testing.T) {
	tiers := []domain.DiscountTier{
		{ID: 1, MinParticipants: 5, Percentage: 10},
		{ID: 2, MinParticipants: 10, Percentage: 20},
	}

	t.Run("twelve attendees hit the twenty percent tier", func(t *testing.T) {
		quote := domain.ComputeQuote(1000, 12, tiers)

		require.NotNil(t, quote.Tier)
		assert.Equal(t, 10, quote.Tier.MinParticipants)
		assert.Equal(t, 20.0, quote.Tier.Percentage)
		assert.Equal(t, 1000.0, quote.GrossDue)
		assert.Equal(t, 200.0, quote.DiscountAmount)
		assert.Equal(t, 800.0, quote.NetDue)
	})

	t.Run("no qualifying tier keeps the gross amount", func(t *testing.T) {
		quote := domain.ComputeQuote(1000, 3, tiers)

		assert.Nil(t, quote.Tier)
		assert.Equal(t, 0.0, quote.DiscountAmount)
		assert.Equal(t, 1000.0, quote.NetDue)
	})

	t.Run("net due never exceeds gross", func(t *testing.T) {
		for count := 0; count <= 15; count++ {
			quote := domain.ComputeQuote(1000, count, tiers)
			assert.LessOrEqual(t, quote.NetDue, quote.GrossDue, "count %d", count)
			assert.GreaterOrEqual(t, quote.NetDue, 0.0, "count %d", count)
		}
	})

	t.Run("full discount floors at zero", func(t *testing.T) {
		quote := domain.ComputeQuote(1000, 10, []domain.DiscountTier{{ID: 3, MinParticipants: 2, Percentage: 100}})

		assert.Equal(t, 1000.0, quote.DiscountAmount)
		assert.Equal(t, 0.0, quote.NetDue)
	})
}
