package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrTierNotFound        = errors.New("discount tier not found")
	ErrTierThresholdExists = errors.New("a discount tier already exists for this participant count")
)

type DiscountDAO struct {
	db *gorm.DB
}

func NewDiscountDAO(db *gorm.DB) *DiscountDAO {
	return &DiscountDAO{
		db: db,
	}
}

func (d *DiscountDAO) List(ctx context.Context) ([]DiscountTier, error) {
	var tiers []DiscountTier

	result := d.db.WithContext(ctx).Order("min_participants ASC").Find(&tiers)
	if result.Error != nil {
		return nil, result.Error
	}

	return tiers, nil
}

func (d *DiscountDAO) FindByID(ctx context.Context, id uint) (DiscountTier, error) {
	var tier DiscountTier

	result := d.db.WithContext(ctx).First(&tier, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DiscountTier{}, ErrTierNotFound
		}

		return DiscountTier{}, result.Error
	}

	return tier, nil
}

func (d *DiscountDAO) FindByMinParticipants(ctx context.Context, minParticipants int) (DiscountTier, error) {
	var tier DiscountTier

	result := d.db.WithContext(ctx).First(&tier, "min_participants = ?", minParticipants)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DiscountTier{}, ErrTierNotFound
		}

		return DiscountTier{}, result.Error
	}

	return tier, nil
}

func (d *DiscountDAO) Insert(ctx context.Context, tier DiscountTier) (DiscountTier, error) {
	result := d.db.WithContext(ctx).Create(&tier)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return DiscountTier{}, ErrTierThresholdExists
		}

		return DiscountTier{}, result.Error
	}

	return tier, nil
}

func (d *DiscountDAO) Update(ctx context.Context, tier DiscountTier) (DiscountTier, error) {
	result := d.db.WithContext(ctx).Model(&DiscountTier{}).
		Where("id = ?", tier.ID).
		Updates(map[string]interface{}{
			"min_participants": tier.MinParticipants,
			"percentage":       tier.Percentage,
			"description":      tier.Description,
		})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return DiscountTier{}, ErrTierThresholdExists
		}

		return DiscountTier{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DiscountTier{}, ErrTierNotFound
	}

	return d.FindByID(ctx, tier.ID)
}

func (d *DiscountDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&DiscountTier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTierNotFound
	}

	return nil
}
