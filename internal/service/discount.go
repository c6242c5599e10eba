package service

import (
	"context"
	"fmt"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
)

var (
	ErrTierNotFound        = repository.ErrTierNotFound
	ErrTierThresholdExists = repository.ErrTierThresholdExists
)

type DiscountRepository interface {
	ListTiers(ctx context.Context) ([]domain.DiscountTier, error)
	GetTier(ctx context.Context, id uint) (domain.DiscountTier, error)
	CreateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error)
	UpdateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error)
	DeleteTier(ctx context.Context, id uint) error
}

type DiscountService struct {
	repo DiscountRepository
}

func NewDiscountService(repo DiscountRepository) *DiscountService {
	return &DiscountService{
		repo: repo,
	}
}

func (s *DiscountService) ListTiers(ctx context.Context) ([]domain.DiscountTier, error) {
	tiers, err := s.repo.ListTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTiers -> %w", err)
	}

	return tiers, nil
}

func (s *DiscountService) GetTier(ctx context.Context, id uint) (domain.DiscountTier, error) {
	tier, err := s.repo.GetTier(ctx, id)
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("s.repo.GetTier -> %w", err)
	}

	return tier, nil
}

func (s *DiscountService) CreateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error) {
	created, err := s.repo.CreateTier(ctx, tier)
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("s.repo.CreateTier -> %w", err)
	}

	return created, nil
}

func (s *DiscountService) UpdateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error) {
	updated, err := s.repo.UpdateTier(ctx, tier)
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("s.repo.UpdateTier -> %w", err)
	}

	return updated, nil
}

func (s *DiscountService) DeleteTier(ctx context.Context, id uint) error {
	if err := s.repo.DeleteTier(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteTier -> %w", err)
	}

	return nil
}

// PreviewAmount quotes the discounted amount a group of the given size
// would owe, without touching any activity.
func (s *DiscountService) PreviewAmount(ctx context.Context, gross float64, participantCount int) (domain.Quote, error) {
	if gross <= 0 {
		return domain.Quote{}, domain.ErrNonPositiveAmount
	}

	tiers, err := s.repo.ListTiers(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("s.repo.ListTiers -> %w", err)
	}

	return domain.ComputeQuote(gross, participantCount, tiers), nil
}
