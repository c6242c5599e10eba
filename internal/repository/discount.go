package repository

import (
	"context"
	"fmt"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository/dao"
)

var (
	ErrTierNotFound        = dao.ErrTierNotFound
	ErrTierThresholdExists = dao.ErrTierThresholdExists
)

type DiscountDAO interface {
	List(ctx context.Context) ([]dao.DiscountTier, error)
	FindByID(ctx context.Context, id uint) (dao.DiscountTier, error)
	Insert(ctx context.Context, tier dao.DiscountTier) (dao.DiscountTier, error)
	Update(ctx context.Context, tier dao.DiscountTier) (dao.DiscountTier, error)
	Delete(ctx context.Context, id uint) error
}

type DiscountRepository struct {
	dao DiscountDAO
}

func NewDiscountRepository(dao DiscountDAO) *DiscountRepository {
	return &DiscountRepository{
		dao: dao,
	}
}

func (r *DiscountRepository) domainToDao(t domain.DiscountTier) dao.DiscountTier {
	return dao.DiscountTier{
		ID:              t.ID,
		MinParticipants: t.MinParticipants,
		Percentage:      t.Percentage,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *DiscountRepository) daoToDomain(t dao.DiscountTier) domain.DiscountTier {
	return domain.DiscountTier{
		ID:              t.ID,
		MinParticipants: t.MinParticipants,
		Percentage:      t.Percentage,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *DiscountRepository) daosToDomain(tiers []dao.DiscountTier) []domain.DiscountTier {
	result := make([]domain.DiscountTier, len(tiers))
	for i, t := range tiers {
		result[i] = r.daoToDomain(t)
	}

	return result
}

func (r *DiscountRepository) ListTiers(ctx context.Context) ([]domain.DiscountTier, error) {
	tiers, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(tiers), nil
}

func (r *DiscountRepository) GetTier(ctx context.Context, id uint) (domain.DiscountTier, error) {
	tier, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(tier), nil
}

func (r *DiscountRepository) CreateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(tier))
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DiscountRepository) UpdateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(tier))
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *DiscountRepository) DeleteTier(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
