package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/service"
)

func newActivityFixture(bounds *domain.CotisationBounds) (*service.ActivityService, *fakeActivityRepo, *fakeAttendanceRepo, *fakePaymentRepo) {
	activityRepo := &fakeActivityRepo{}
	attendanceRepo := &fakeAttendanceRepo{}
	paymentRepo := &fakePaymentRepo{attendances: attendanceRepo}
	discountRepo := &fakeDiscountRepo{
		tiers:  []domain.DiscountTier{{ID: 1, MinParticipants: 2, Percentage: 10}},
		nextID: 1,
	}
	settings := service.NewSettingsService(&fakeSettingsRepo{bounds: bounds})

	svc := service.NewActivityService(activityRepo, settings, attendanceRepo, paymentRepo, discountRepo)

	return svc, activityRepo, attendanceRepo, paymentRepo
}

func tomorrow() time.Time {
	return time.Now().AddDate(0, 0, 1)
}

func TestCreateActivity(t *testing.T) {
	t.Run("valid activity within bounds", func(t *testing.T) {
		svc, repo, _, _ := newActivityFixture(&domain.CotisationBounds{ID: 1, Lower: 50, Upper: 500})

		created, err := svc.CreateActivity(context.Background(), domain.Activity{
			Date:        tomorrow(),
			Description: "Randonnée",
			Priority:    5,
			Region:      "Est",
			Cotisation:  150,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Len(t, repo.activities, 1)
	})

	t.Run("cotisation outside the configured bounds", func(t *testing.T) {
		svc, _, _, _ := newActivityFixture(&domain.CotisationBounds{ID: 1, Lower: 50, Upper: 500})

		_, err := svc.CreateActivity(context.Background(), domain.Activity{
			Date:       tomorrow(),
			Priority:   5,
			Cotisation: 1000,
		})

		var outOfBounds *domain.OutOfBoundsError
		require.ErrorAs(t, err, &outOfBounds)
		assert.Equal(t, 1000.0, outOfBounds.Amount)
	})

	t.Run("unconfigured bounds accept any cotisation", func(t *testing.T) {
		svc, _, _, _ := newActivityFixture(nil)

		_, err := svc.CreateActivity(context.Background(), domain.Activity{
			Date:       tomorrow(),
			Priority:   5,
			Cotisation: 1000000,
		})
		assert.NoError(t, err)
	})

	t.Run("past dates are refused", func(t *testing.T) {
		svc, _, _, _ := newActivityFixture(nil)

		_, err := svc.CreateActivity(context.Background(), domain.Activity{
			Date:       time.Now().AddDate(0, 0, -1),
			Priority:   5,
			Cotisation: 100,
		})
		assert.ErrorIs(t, err, domain.ErrPastDate)
	})

	t.Run("priority outside 1 to 10", func(t *testing.T) {
		svc, _, _, _ := newActivityFixture(nil)

		_, err := svc.CreateActivity(context.Background(), domain.Activity{
			Date:       tomorrow(),
			Priority:   0,
			Cotisation: 100,
		})
		assert.ErrorIs(t, err, domain.ErrPriorityOutOfRange)

		_, err = svc.CreateActivity(context.Background(), domain.Activity{
			Date:       tomorrow(),
			Priority:   11,
			Cotisation: 100,
		})
		assert.ErrorIs(t, err, domain.ErrPriorityOutOfRange)
	})
}

func TestUpdateActivity(t *testing.T) {
	svc, _, _, _ := newActivityFixture(&domain.CotisationBounds{ID: 1, Lower: 50, Upper: 500})
	ctx := context.Background()

	created, err := svc.CreateActivity(ctx, domain.Activity{
		Date:        tomorrow(),
		Description: "Randonnée",
		Priority:    5,
		Cotisation:  150,
	})
	require.NoError(t, err)

	created.Cotisation = 200
	updated, err := svc.UpdateActivity(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.Cotisation)

	// Updates revalidate against the bounds like creations do.
	created.Cotisation = 10
	_, err = svc.UpdateActivity(ctx, created)
	var outOfBounds *domain.OutOfBoundsError
	assert.ErrorAs(t, err, &outOfBounds)
}

func TestGetBalance(t *testing.T) {
	svc, activityRepo, attendanceRepo, paymentRepo := newActivityFixture(nil)
	ctx := context.Background()

	activityRepo.activities = []domain.Activity{
		{ID: 1, Date: tomorrow(), Description: "Tournoi", Region: "Ouest", Cotisation: 300},
	}
	attendanceRepo.attendances = []domain.Attendance{
		{ID: 1, ActivityID: 1, MemberID: uintPtr(1)},
		{ID: 2, ActivityID: 1, MemberID: uintPtr(1), PersonID: uintPtr(5)},
	}
	attendanceRepo.nextID = 2
	paymentRepo.payments = []domain.Payment{{ID: 1, AttendanceID: 1, Amount: 100}}
	paymentRepo.nextID = 1

	balance, err := svc.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, balance.ParticipantCount)
	assert.Equal(t, 1, balance.MemberCount)
	assert.Equal(t, 1, balance.GuestCount)
	assert.Equal(t, 300.0, balance.GrossDue)
	assert.Equal(t, 30.0, balance.DiscountAmount)
	assert.Equal(t, 270.0, balance.NetDue)
	assert.Equal(t, 100.0, balance.TotalPaid)
	assert.Equal(t, 170.0, balance.Remaining)

	_, err = svc.GetBalance(ctx, 99)
	assert.ErrorIs(t, err, service.ErrActivityNotFound)
}

func TestListParticipants(t *testing.T) {
	svc, activityRepo, attendanceRepo, _ := newActivityFixture(nil)
	ctx := context.Background()

	activityRepo.activities = []domain.Activity{{ID: 1, Date: tomorrow(), Cotisation: 100}}
	attendanceRepo.participants = []domain.Participant{
		{AttendanceID: 1, ActivityID: 1, PersonID: 1, LastName: "Durand", IsMember: true},
		{AttendanceID: 2, ActivityID: 1, PersonID: 9, LastName: "Morel", AccompanyingMemberID: uintPtr(1)},
	}

	participants, err := svc.ListParticipants(ctx, 1)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.True(t, participants[0].IsMember)
	assert.False(t, participants[1].IsMember)

	_, err = svc.ListParticipants(ctx, 99)
	assert.ErrorIs(t, err, service.ErrActivityNotFound)
}
