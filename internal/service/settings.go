package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
)

var (
	ErrBoundsNotConfigured     = repository.ErrBoundsNotConfigured
	ErrBoundsAlreadyConfigured = repository.ErrBoundsAlreadyConfigured
)

type SettingsRepository interface {
	GetBounds(ctx context.Context) (domain.CotisationBounds, error)
	CreateBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error)
	UpdateBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error)
}

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

func (s *SettingsService) GetBounds(ctx context.Context) (domain.CotisationBounds, error) {
	bounds, err := s.repo.GetBounds(ctx)
	if err != nil {
		return domain.CotisationBounds{}, fmt.Errorf("s.repo.GetBounds -> %w", err)
	}

	return bounds, nil
}

func (s *SettingsService) ConfigureBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	if err := bounds.Validate(); err != nil {
		return domain.CotisationBounds{}, err
	}

	created, err := s.repo.CreateBounds(ctx, bounds)
	if err != nil {
		return domain.CotisationBounds{}, fmt.Errorf("s.repo.CreateBounds -> %w", err)
	}

	return created, nil
}

func (s *SettingsService) UpdateBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	if err := bounds.Validate(); err != nil {
		return domain.CotisationBounds{}, err
	}

	updated, err := s.repo.UpdateBounds(ctx, bounds)
	if err != nil {
		return domain.CotisationBounds{}, fmt.Errorf("s.repo.UpdateBounds -> %w", err)
	}

	return updated, nil
}

// CheckCotisation verifies an amount against the configured bounds.
// Unconfigured bounds are permissive, so only positivity is enforced then.
func (s *SettingsService) CheckCotisation(ctx context.Context, amount float64) error {
	bounds, err := s.currentBounds(ctx)
	if err != nil {
		return err
	}

	return domain.ValidateCotisation(amount, bounds)
}

// currentBounds returns nil when no bounds row exists yet.
func (s *SettingsService) currentBounds(ctx context.Context) (*domain.CotisationBounds, error) {
	bounds, err := s.repo.GetBounds(ctx)
	if err != nil {
		if errors.Is(err, ErrBoundsNotConfigured) {
			return nil, nil
		}

		return nil, fmt.Errorf("s.repo.GetBounds -> %w", err)
	}

	return &bounds, nil
}
