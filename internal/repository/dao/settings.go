package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrBoundsNotConfigured     = errors.New("cotisation bounds are not configured")
	ErrBoundsAlreadyConfigured = errors.New("cotisation bounds already exist")
)

type SettingsDAO struct {
	db *gorm.DB
}

func NewSettingsDAO(db *gorm.DB) *SettingsDAO {
	return &SettingsDAO{
		db: db,
	}
}

func (d *SettingsDAO) Find(ctx context.Context) (CotisationBounds, error) {
	var bounds CotisationBounds

	result := d.db.WithContext(ctx).First(&bounds)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CotisationBounds{}, ErrBoundsNotConfigured
		}

		return CotisationBounds{}, result.Error
	}

	return bounds, nil
}

func (d *SettingsDAO) Insert(ctx context.Context, bounds CotisationBounds) (CotisationBounds, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CotisationBounds{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrBoundsAlreadyConfigured
		}

		return tx.Create(&bounds).Error
	})
	if err != nil {
		return CotisationBounds{}, err
	}

	return bounds, nil
}

func (d *SettingsDAO) Update(ctx context.Context, bounds CotisationBounds) (CotisationBounds, error) {
	result := d.db.WithContext(ctx).Model(&CotisationBounds{}).
		Where("id = ?", bounds.ID).
		Updates(map[string]interface{}{"lower": bounds.Lower, "upper": bounds.Upper})
	if result.Error != nil {
		return CotisationBounds{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CotisationBounds{}, ErrBoundsNotConfigured
	}

	return d.Find(ctx)
}
