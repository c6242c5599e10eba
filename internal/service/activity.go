package service

import (
	"context"
	"fmt"
	"time"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
)

var ErrActivityNotFound = repository.ErrActivityNotFound

type ActivityRepository interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
	ListActivitiesBetween(ctx context.Context, start, end time.Time) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id uint) error
	CountByRegion(ctx context.Context, start, end time.Time) ([]domain.RegionActivityCount, error)
	CountParticipants(ctx context.Context, start, end time.Time) ([]domain.ActivityParticipation, error)
}

type ActivityService struct {
	repo           ActivityRepository
	settings       *SettingsService
	attendanceRepo AttendanceRepository
	paymentRepo    PaymentRepository
	discountRepo   DiscountRepository
}

func NewActivityService(
	repo ActivityRepository,
	settings *SettingsService,
	attendanceRepo AttendanceRepository,
	paymentRepo PaymentRepository,
	discountRepo DiscountRepository,
) *ActivityService {
	return &ActivityService{
		repo:           repo,
		settings:       settings,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		discountRepo:   discountRepo,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListActivities -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.GetActivity(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.GetActivity -> %w", err)
	}

	return activity, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	bounds, err := s.settings.currentBounds(ctx)
	if err != nil {
		return domain.Activity{}, err
	}

	if err := activity.Validate(time.Now(), bounds); err != nil {
		return domain.Activity{}, err
	}

	created, err := s.repo.CreateActivity(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.CreateActivity -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	bounds, err := s.settings.currentBounds(ctx)
	if err != nil {
		return domain.Activity{}, err
	}

	if err := activity.Validate(time.Now(), bounds); err != nil {
		return domain.Activity{}, err
	}

	updated, err := s.repo.UpdateActivity(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.UpdateActivity -> %w", err)
	}

	return updated, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id uint) error {
	if err := s.repo.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteActivity -> %w", err)
	}

	return nil
}

func (s *ActivityService) ListParticipants(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	if _, err := s.repo.GetActivity(ctx, activityID); err != nil {
		return nil, fmt.Errorf("s.repo.GetActivity -> %w", err)
	}

	participants, err := s.attendanceRepo.ListParticipants(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.attendanceRepo.ListParticipants -> %w", err)
	}

	return participants, nil
}

func (s *ActivityService) ListPayments(ctx context.Context, activityID uint) ([]domain.Payment, error) {
	if _, err := s.repo.GetActivity(ctx, activityID); err != nil {
		return nil, fmt.Errorf("s.repo.GetActivity -> %w", err)
	}

	payments, err := s.paymentRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.paymentRepo.ListByActivity -> %w", err)
	}

	return payments, nil
}

// GetBalance computes the activity's full financial position: headcount,
// applied tier, net due and what remains after recorded payments.
func (s *ActivityService) GetBalance(ctx context.Context, activityID uint) (domain.ActivityBalance, error) {
	activity, err := s.repo.GetActivity(ctx, activityID)
	if err != nil {
		return domain.ActivityBalance{}, fmt.Errorf("s.repo.GetActivity -> %w", err)
	}

	attendances, err := s.attendanceRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return domain.ActivityBalance{}, fmt.Errorf("s.attendanceRepo.ListByActivity -> %w", err)
	}

	payments, err := s.paymentRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return domain.ActivityBalance{}, fmt.Errorf("s.paymentRepo.ListByActivity -> %w", err)
	}

	tiers, err := s.discountRepo.ListTiers(ctx)
	if err != nil {
		return domain.ActivityBalance{}, fmt.Errorf("s.discountRepo.ListTiers -> %w", err)
	}

	return domain.ComputeBalance(activity, attendances, payments, tiers), nil
}
