package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	List(ctx context.Context) ([]dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]dao.Activity, error)
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	Update(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	Delete(ctx context.Context, id uint) error
	CountByRegionBetween(ctx context.Context, start, end time.Time) ([]dao.RegionActivityCount, error)
	CountParticipantsBetween(ctx context.Context, start, end time.Time) ([]dao.ActivityParticipation, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) domainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:          a.ID,
		Date:        a.Date,
		Description: a.Description,
		Priority:    a.Priority,
		Region:      a.Region,
		Cotisation:  a.Cotisation,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Date:        a.Date,
		Description: a.Description,
		Priority:    a.Priority,
		Region:      a.Region,
		Cotisation:  a.Cotisation,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *ActivityRepository) daosToDomain(activities []dao.Activity) []domain.Activity {
	result := make([]domain.Activity, len(activities))
	for i, a := range activities {
		result[i] = r.daoToDomain(a)
	}

	return result
}

func (r *ActivityRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(activities), nil
}

func (r *ActivityRepository) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(activity), nil
}

func (r *ActivityRepository) ListActivitiesBetween(ctx context.Context, start, end time.Time) ([]domain.Activity, error) {
	activities, err := r.dao.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListBetween -> %w", err)
	}

	return r.daosToDomain(activities), nil
}

func (r *ActivityRepository) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ActivityRepository) DeleteActivity(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) CountByRegion(ctx context.Context, start, end time.Time) ([]domain.RegionActivityCount, error) {
	counts, err := r.dao.CountByRegionBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByRegionBetween -> %w", err)
	}

	result := make([]domain.RegionActivityCount, len(counts))
	for i, c := range counts {
		result[i] = domain.RegionActivityCount{
			Region:        c.Region,
			ActivityCount: c.ActivityCount,
		}
	}

	return result, nil
}

func (r *ActivityRepository) CountParticipants(ctx context.Context, start, end time.Time) ([]domain.ActivityParticipation, error) {
	counts, err := r.dao.CountParticipantsBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountParticipantsBetween -> %w", err)
	}

	result := make([]domain.ActivityParticipation, len(counts))
	for i, c := range counts {
		result[i] = domain.ActivityParticipation{
			ActivityID:       c.ActivityID,
			Description:      c.Description,
			ParticipantCount: c.ParticipantCount,
		}
	}

	return result, nil
}
