package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/association-manager/association-api/internal/domain"
)

func uintPtr(v uint) *uint { return &v }

func TestAttendance_Payer(t *testing.T) {
	t.Run("member attendance", func(t *testing.T) {
		att := domain.Attendance{ID: 1, ActivityID: 7, MemberID: uintPtr(3)}

		payer, err := att.Payer()

		require.NoError(t, err)
		assert.Equal(t, domain.MemberPayer{MemberID: 3}, payer)
		assert.False(t, att.IsGuest())
	})

	t.Run("guest attendance carries the accompanying member", func(t *testing.T) {
		att := domain.Attendance{ID: 2, ActivityID: 7, MemberID: uintPtr(3), PersonID: uintPtr(9)}

		payer, err := att.Payer()

		require.NoError(t, err)
		assert.Equal(t, domain.GuestPayer{PersonID: 9, AccompanyingMemberID: 3}, payer)
		assert.True(t, att.IsGuest())
	})

	t.Run("guest without accompanying member is malformed", func(t *testing.T) {
		att := domain.Attendance{ID: 3, ActivityID: 7, PersonID: uintPtr(9)}

		_, err := att.Payer()

		assert.ErrorIs(t, err, domain.ErrMalformedAttendance)
	})

	t.Run("empty row is malformed", func(t *testing.T) {
		att := domain.Attendance{ID: 4, ActivityID: 7}

		_, err := att.Payer()

		assert.ErrorIs(t, err, domain.ErrMalformedAttendance)
	})
}

func TestComputeBalance(t *testing.T) {
	activity := domain.Activity{ID: 1, Region: "Nord", Cotisation: 1000}
	tiers := []domain.DiscountTier{{ID: 1, MinParticipants: 5, Percentage: 10}}

	attendances := []domain.Attendance{
		{ID: 1, ActivityID: 1, MemberID: uintPtr(1)},
		{ID: 2, ActivityID: 1, MemberID: uintPtr(2)},
		{ID: 3, ActivityID: 1, MemberID: uintPtr(3)},
		{ID: 4, ActivityID: 1, MemberID: uintPtr(1), PersonID: uintPtr(10)},
		{ID: 5, ActivityID: 1, MemberID: uintPtr(2), PersonID: uintPtr(11)},
	}
	payments := []domain.Payment{
		{ID: 1, AttendanceID: 1, Amount: 500},
		{ID: 2, AttendanceID: 2, Amount: 100},
	}

	balance := domain.ComputeBalance(activity, attendances, payments, tiers)

	assert.Equal(t, 5, balance.ParticipantCount)
	assert.Equal(t, 3, balance.MemberCount)
	assert.Equal(t, 2, balance.GuestCount)
	assert.Equal(t, 1000.0, balance.GrossDue)
	require.NotNil(t, balance.Tier)
	assert.Equal(t, 100.0, balance.DiscountAmount)
	assert.Equal(t, 900.0, balance.NetDue)
	assert.Equal(t, 600.0, balance.TotalPaid)
	assert.Equal(t, 300.0, balance.Remaining)
}
