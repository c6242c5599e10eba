package repository

import (
	"context"
	"fmt"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository/dao"
)

var (
	ErrBoundsNotConfigured     = dao.ErrBoundsNotConfigured
	ErrBoundsAlreadyConfigured = dao.ErrBoundsAlreadyConfigured
)

type SettingsDAO interface {
	Find(ctx context.Context) (dao.CotisationBounds, error)
	Insert(ctx context.Context, bounds dao.CotisationBounds) (dao.CotisationBounds, error)
	Update(ctx context.Context, bounds dao.CotisationBounds) (dao.CotisationBounds, error)
}

type SettingsRepository struct {
	dao SettingsDAO
}

func NewSettingsRepository(dao SettingsDAO) *SettingsRepository {
	return &SettingsRepository{
		dao: dao,
	}
}

func (r *SettingsRepository) domainToDao(b domain.CotisationBounds) dao.CotisationBounds {
	return dao.CotisationBounds{
		ID:        b.ID,
		Lower:     b.Lower,
		Upper:     b.Upper,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *SettingsRepository) daoToDomain(b dao.CotisationBounds) domain.CotisationBounds {
	return domain.CotisationBounds{
		ID:        b.ID,
		Lower:     b.Lower,
		Upper:     b.Upper,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *SettingsRepository) GetBounds(ctx context.Context) (domain.CotisationBounds, error) {
	bounds, err := r.dao.Find(ctx)
	if err != nil {
		return domain.CotisationBounds{}, fmt.Errorf("r.dao.Find -> %w", err)
	}

	return r.daoToDomain(bounds), nil
}

func (r *SettingsRepository) CreateBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(bounds))
	if err != nil {
		return domain.CotisationBounds{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SettingsRepository) UpdateBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(bounds))
	if err != nil {
		return domain.CotisationBounds{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}
