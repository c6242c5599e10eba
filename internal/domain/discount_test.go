package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/association-manager/association-api/internal/domain"
)

func TestResolveTier(t *testing.T) {
	tiers := []domain.DiscountTier{
		{ID: 1, MinParticipants: 5, Percentage: 10},
		{ID: 2, MinParticipants: 10, Percentage: 20},
		{ID: 3, MinParticipants: 20, Percentage: 30},
	}

	tests := []struct {
		name       string
		count      int
		tiers      []domain.DiscountTier
		wantTierID uint
		wantNone   bool
	}{
		{name: "below every threshold", count: 4, tiers: tiers, wantNone: true},
		{name: "exactly at first threshold", count: 5, tiers: tiers, wantTierID: 1},
		{name: "between thresholds picks highest qualifying", count: 12, tiers: tiers, wantTierID: 2},
		{name: "above every threshold", count: 50, tiers: tiers, wantTierID: 3},
		{name: "no tiers configured", count: 50, tiers: nil, wantNone: true},
		{name: "single attendee never discounted", count: 1, tiers: []domain.DiscountTier{{ID: 9, MinParticipants: 1, Percentage: 50}}, wantNone: true},
		{name: "zero attendees never discounted", count: 0, tiers: tiers, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := domain.ResolveTier(tt.count, tt.tiers)

			if tt.wantNone {
				assert.Nil(t, tier)
				return
			}

			require.NotNil(t, tier)
			assert.Equal(t, tt.wantTierID, tier.ID)
		})
	}
}

func TestResolveTier_PicksMaximumQualifyingThreshold(t *testing.T) {
	// Declaration order must not matter.
	tiers := []domain.DiscountTier{
		{ID: 2, MinParticipants: 10, Percentage: 20},
		{ID: 1, MinParticipants: 5, Percentage: 10},
	}

	for count := 2; count <= 30; count++ {
		tier := domain.ResolveTier(count, tiers)
		for _, candidate := range tiers {
			if candidate.MinParticipants <= count {
				require.NotNil(t, tier, "count %d", count)
				assert.GreaterOrEqual(t, tier.MinParticipants, candidate.MinParticipants, "count %d", count)
			}
		}
	}
}
