package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/association-manager/association-api/internal/domain"
)

func TestTotalPaid(t *testing.T) {
	payments := []domain.Payment{
		{ID: 1, Amount: 400},
		{ID: 2, Amount: 400},
		{ID: 3, Amount: 150.50},
	}

	assert.Equal(t, 950.50, domain.TotalPaid(payments))
	assert.Equal(t, 0.0, domain.TotalPaid(nil))

	// Pure function: summing twice yields the same result.
	assert.Equal(t, domain.TotalPaid(payments), domain.TotalPaid(payments))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 200.0, domain.Remaining(1000, 800))
	assert.Equal(t, 0.0, domain.Remaining(800, 800))
	assert.Equal(t, 0.0, domain.Remaining(800, 900)) // clamped, never negative
	assert.Equal(t, 0.0, domain.Remaining(0, 0))
}

func TestValidateNewPayment(t *testing.T) {
	t.Run("payment within the remaining balance", func(t *testing.T) {
		// netDue=1000, paid 400+400, a final 200 settles the activity.
		assert.NoError(t, domain.ValidateNewPayment(200, 1000, 800))
	})

	t.Run("payment on a settled activity is refused", func(t *testing.T) {
		err := domain.ValidateNewPayment(1, 800, 800)

		var exceeded *domain.BalanceExceededError
		require.ErrorAs(t, err, &exceeded)
		assert.Equal(t, 1.0, exceeded.Proposed)
		assert.Equal(t, 800.0, exceeded.AlreadyPaid)
		assert.Equal(t, 800.0, exceeded.NetDue)
		assert.Equal(t, 0.0, exceeded.Remaining)
	})

	t.Run("payment exceeding the remaining balance is refused", func(t *testing.T) {
		err := domain.ValidateNewPayment(500, 1000, 800)

		var exceeded *domain.BalanceExceededError
		require.ErrorAs(t, err, &exceeded)
		assert.Equal(t, 200.0, exceeded.Remaining)
	})

	t.Run("over-provisioned activity accepts nothing more", func(t *testing.T) {
		err := domain.ValidateNewPayment(0.01, 800, 1000)

		var exceeded *domain.BalanceExceededError
		assert.ErrorAs(t, err, &exceeded)
	})

	t.Run("non-positive amounts are refused outright", func(t *testing.T) {
		assert.ErrorIs(t, domain.ValidateNewPayment(0, 1000, 0), domain.ErrNonPositiveAmount)
		assert.ErrorIs(t, domain.ValidateNewPayment(-50, 1000, 0), domain.ErrNonPositiveAmount)
	})
}
