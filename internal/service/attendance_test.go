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

func newAttendanceFixture() (*service.AttendanceService, *fakeAttendanceRepo, *fakeDirectoryRepo) {
	activityRepo := &fakeActivityRepo{
		activities: []domain.Activity{
			{ID: 1, Date: time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC), Description: "Tournoi", Region: "Ouest", Cotisation: 150},
		},
	}
	persons := []domain.Person{
		{ID: 1, LastName: "Durand", FirstName: "Alice"},
		{ID: 2, LastName: "Martin", FirstName: "Bruno"},
		{ID: 7, LastName: "Morel", FirstName: "David"},
	}
	directoryRepo := &fakeDirectoryRepo{
		persons:      persons,
		members:      []domain.Member{{Person: persons[0]}, {Person: persons[1]}},
		nextPersonID: 7,
	}
	attendanceRepo := &fakeAttendanceRepo{}

	return service.NewAttendanceService(attendanceRepo, activityRepo, directoryRepo), attendanceRepo, directoryRepo
}

func TestRegisterMemberAttendance(t *testing.T) {
	svc, _, _ := newAttendanceFixture()
	ctx := context.Background()

	attendance, err := svc.RegisterMember(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), attendance.ActivityID)
	require.NotNil(t, attendance.MemberID)
	assert.Equal(t, uint(1), *attendance.MemberID)
	assert.False(t, attendance.IsGuest())

	_, err = svc.RegisterMember(ctx, 1, 1)
	assert.ErrorIs(t, err, service.ErrAlreadyAttending)

	_, err = svc.RegisterMember(ctx, 99, 1)
	assert.ErrorIs(t, err, service.ErrActivityNotFound)

	// Person 7 exists but never enrolled.
	_, err = svc.RegisterMember(ctx, 1, 7)
	assert.ErrorIs(t, err, service.ErrMemberNotFound)
}

func TestRegisterGuestAttendance(t *testing.T) {
	svc, _, _ := newAttendanceFixture()
	ctx := context.Background()

	// The accompanying member has to attend before bringing anyone.
	_, err := svc.RegisterGuest(ctx, 1, 7, 1)
	assert.ErrorIs(t, err, service.ErrMemberNotAttending)

	_, err = svc.RegisterMember(ctx, 1, 1)
	require.NoError(t, err)

	attendance, err := svc.RegisterGuest(ctx, 1, 7, 1)
	require.NoError(t, err)
	assert.True(t, attendance.IsGuest())
	require.NotNil(t, attendance.PersonID)
	assert.Equal(t, uint(7), *attendance.PersonID)
	require.NotNil(t, attendance.MemberID)
	assert.Equal(t, uint(1), *attendance.MemberID)

	_, err = svc.RegisterGuest(ctx, 1, 7, 1)
	assert.ErrorIs(t, err, service.ErrAlreadyAttending)

	_, err = svc.RegisterGuest(ctx, 1, 42, 1)
	assert.ErrorIs(t, err, service.ErrPersonNotFound)
}

func TestRegisterAnonymousGuests(t *testing.T) {
	t.Run("batch creates placeholder persons", func(t *testing.T) {
		svc, repo, directory := newAttendanceFixture()
		ctx := context.Background()

		_, err := svc.RegisterMember(ctx, 1, 1)
		require.NoError(t, err)

		attendances, err := svc.RegisterAnonymousGuests(ctx, 1, 1, 3)
		require.NoError(t, err)
		require.Len(t, attendances, 3)
		assert.Len(t, repo.attendances, 4)

		created := directory.persons[len(directory.persons)-3:]
		assert.Equal(t, "Invité", created[0].LastName)
		assert.Equal(t, "Anonyme 1", created[0].FirstName)
		assert.Equal(t, "Anonyme 3", created[2].FirstName)
	})

	t.Run("accompanying member must attend", func(t *testing.T) {
		svc, _, _ := newAttendanceFixture()

		_, err := svc.RegisterAnonymousGuests(context.Background(), 1, 1, 2)
		assert.ErrorIs(t, err, service.ErrMemberNotAttending)
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		svc, repo, _ := newAttendanceFixture()

		attendances, err := svc.RegisterAnonymousGuests(context.Background(), 1, 1, 0)
		require.NoError(t, err)
		assert.Nil(t, attendances)
		assert.Empty(t, repo.attendances)
	})
}

func TestDeleteAttendance(t *testing.T) {
	svc, repo, _ := newAttendanceFixture()
	ctx := context.Background()

	attendance, err := svc.RegisterMember(ctx, 1, 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttendance(ctx, attendance.ID))
	assert.Empty(t, repo.attendances)

	assert.ErrorIs(t, svc.DeleteAttendance(ctx, attendance.ID), service.ErrAttendanceNotFound)
}
