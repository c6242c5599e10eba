package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
)

var (
	ErrAttendanceNotFound = repository.ErrAttendanceNotFound
	ErrAlreadyAttending   = repository.ErrAlreadyAttending

	// ErrMemberNotAttending rejects a guest whose accompanying member is not
	// attending the activity themselves.
	ErrMemberNotAttending = errors.New("accompanying member is not attending this activity")
)

type AttendanceRepository interface {
	GetAttendance(ctx context.Context, id uint) (domain.Attendance, error)
	ListByActivity(ctx context.Context, activityID uint) ([]domain.Attendance, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.Attendance, error)
	RegisterMember(ctx context.Context, activityID, memberID uint) (domain.Attendance, error)
	RegisterGuest(ctx context.Context, activityID, personID, accompanyingMemberID uint) (domain.Attendance, error)
	DeleteAttendance(ctx context.Context, id uint) error
	ListParticipants(ctx context.Context, activityID uint) ([]domain.Participant, error)
}

type AttendanceService struct {
	repo          AttendanceRepository
	activityRepo  ActivityRepository
	directoryRepo DirectoryRepository
}

func NewAttendanceService(repo AttendanceRepository, activityRepo ActivityRepository, directoryRepo DirectoryRepository) *AttendanceService {
	return &AttendanceService{
		repo:          repo,
		activityRepo:  activityRepo,
		directoryRepo: directoryRepo,
	}
}

func (s *AttendanceService) ListByActivity(ctx context.Context, activityID uint) ([]domain.Attendance, error) {
	attendances, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByActivity -> %w", err)
	}

	return attendances, nil
}

func (s *AttendanceService) RegisterMember(ctx context.Context, activityID, memberID uint) (domain.Attendance, error) {
	if _, err := s.activityRepo.GetActivity(ctx, activityID); err != nil {
		return domain.Attendance{}, fmt.Errorf("s.activityRepo.GetActivity -> %w", err)
	}

	if _, err := s.directoryRepo.GetMember(ctx, memberID); err != nil {
		return domain.Attendance{}, fmt.Errorf("s.directoryRepo.GetMember -> %w", err)
	}

	attendance, err := s.repo.RegisterMember(ctx, activityID, memberID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.repo.RegisterMember -> %w", err)
	}

	return attendance, nil
}

func (s *AttendanceService) RegisterGuest(ctx context.Context, activityID, personID, accompanyingMemberID uint) (domain.Attendance, error) {
	if _, err := s.activityRepo.GetActivity(ctx, activityID); err != nil {
		return domain.Attendance{}, fmt.Errorf("s.activityRepo.GetActivity -> %w", err)
	}

	if _, err := s.directoryRepo.GetPerson(ctx, personID); err != nil {
		return domain.Attendance{}, fmt.Errorf("s.directoryRepo.GetPerson -> %w", err)
	}

	if err := s.requireMemberAttends(ctx, activityID, accompanyingMemberID); err != nil {
		return domain.Attendance{}, err
	}

	attendance, err := s.repo.RegisterGuest(ctx, activityID, personID, accompanyingMemberID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.repo.RegisterGuest -> %w", err)
	}

	return attendance, nil
}

// RegisterAnonymousGuests creates n placeholder persons and registers each as
// a guest of the accompanying member. Partially created guests are returned
// with the error so the caller can see how far the batch got.
func (s *AttendanceService) RegisterAnonymousGuests(ctx context.Context, activityID, accompanyingMemberID uint, n int) ([]domain.Attendance, error) {
	if n <= 0 {
		return nil, nil
	}

	if _, err := s.activityRepo.GetActivity(ctx, activityID); err != nil {
		return nil, fmt.Errorf("s.activityRepo.GetActivity -> %w", err)
	}

	if err := s.requireMemberAttends(ctx, activityID, accompanyingMemberID); err != nil {
		return nil, err
	}

	attendances := make([]domain.Attendance, 0, n)
	for i := 0; i < n; i++ {
		person, err := s.directoryRepo.CreatePerson(ctx, domain.Person{
			LastName:  "Invité",
			FirstName: fmt.Sprintf("Anonyme %d", i+1),
		})
		if err != nil {
			return attendances, fmt.Errorf("s.directoryRepo.CreatePerson -> %w", err)
		}

		attendance, err := s.repo.RegisterGuest(ctx, activityID, person.ID, accompanyingMemberID)
		if err != nil {
			return attendances, fmt.Errorf("s.repo.RegisterGuest -> %w", err)
		}

		attendances = append(attendances, attendance)
	}

	return attendances, nil
}

func (s *AttendanceService) DeleteAttendance(ctx context.Context, id uint) error {
	if err := s.repo.DeleteAttendance(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteAttendance -> %w", err)
	}

	return nil
}

func (s *AttendanceService) requireMemberAttends(ctx context.Context, activityID, memberID uint) error {
	if _, err := s.directoryRepo.GetMember(ctx, memberID); err != nil {
		return fmt.Errorf("s.directoryRepo.GetMember -> %w", err)
	}

	attendances, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return fmt.Errorf("s.repo.ListByActivity -> %w", err)
	}

	for _, a := range attendances {
		if !a.IsGuest() && a.MemberID != nil && *a.MemberID == memberID {
			return nil
		}
	}

	return ErrMemberNotAttending
}
