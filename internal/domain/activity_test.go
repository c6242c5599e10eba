package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/association-manager/association-api/internal/domain"
)

func TestActivity_Validate(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	bounds := &domain.CotisationBounds{Lower: 1000, Upper: 5000}

	base := domain.Activity{
		Date:       now.AddDate(0, 0, 7),
		Priority:   5,
		Region:     "Nord",
		Cotisation: 3000,
	}

	t.Run("valid activity", func(t *testing.T) {
		assert.NoError(t, base.Validate(now, bounds))
	})

	t.Run("same day is allowed", func(t *testing.T) {
		activity := base
		activity.Date = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

		assert.NoError(t, activity.Validate(now, bounds))
	})

	t.Run("same day in a zone ahead of UTC is allowed", func(t *testing.T) {
		// Shortly after midnight in Kiritimati it is still the previous
		// day in UTC. The UTC calendar day decides, so an activity dated
		// that UTC day must pass.
		local := time.Date(2025, 6, 16, 0, 30, 0, 0, time.FixedZone("UTC+14", 14*60*60))
		activity := base
		activity.Date = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

		assert.NoError(t, activity.Validate(local, bounds))
	})

	t.Run("past date rejected", func(t *testing.T) {
		activity := base
		activity.Date = now.AddDate(0, 0, -1)

		assert.ErrorIs(t, activity.Validate(now, bounds), domain.ErrPastDate)
	})

	t.Run("priority out of range", func(t *testing.T) {
		for _, priority := range []int{0, -3, 11} {
			activity := base
			activity.Priority = priority

			assert.ErrorIs(t, activity.Validate(now, bounds), domain.ErrPriorityOutOfRange)
		}
	})

	t.Run("cotisation outside bounds", func(t *testing.T) {
		activity := base
		activity.Cotisation = 500

		var oob *domain.OutOfBoundsError
		assert.ErrorAs(t, activity.Validate(now, bounds), &oob)
	})

	t.Run("no bounds configured accepts any non-negative cotisation", func(t *testing.T) {
		activity := base
		activity.Cotisation = 999999

		assert.NoError(t, activity.Validate(now, nil))
	})
}
