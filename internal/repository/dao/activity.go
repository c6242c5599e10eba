package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) List(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Order("date DESC").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) ListBetween(ctx context.Context, start, end time.Time) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").
		Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) Update(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Model(&Activity{}).
		Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"date":        activity.Date,
			"description": activity.Description,
			"priority":    activity.Priority,
			"region":      activity.Region,
			"cotisation":  activity.Cotisation,
		})
	if result.Error != nil {
		return Activity{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Activity{}, ErrActivityNotFound
	}

	return d.FindByID(ctx, activity.ID)
}

// Delete cascades to attendances and their payments through the foreign key
// constraints.
func (d *ActivityDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

type RegionActivityCount struct {
	Region        string
	ActivityCount int
}

func (d *ActivityDAO) CountByRegionBetween(ctx context.Context, start, end time.Time) ([]RegionActivityCount, error) {
	var counts []RegionActivityCount

	err := d.db.WithContext(ctx).Model(&Activity{}).
		Select("region, COUNT(*) AS activity_count").
		Where("date BETWEEN ? AND ?", start, end).
		Group("region").
		Order("activity_count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}

type ActivityParticipation struct {
	ActivityID       uint
	Description      string
	ParticipantCount int
}

func (d *ActivityDAO) CountParticipantsBetween(ctx context.Context, start, end time.Time) ([]ActivityParticipation, error) {
	var counts []ActivityParticipation

	err := d.db.WithContext(ctx).Model(&Activity{}).
		Select("activities.id AS activity_id, activities.description, COUNT(attendances.id) AS participant_count").
		Joins("LEFT JOIN attendances ON attendances.activity_id = activities.id").
		Where("activities.date BETWEEN ? AND ?", start, end).
		Group("activities.id, activities.description").
		Order("participant_count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}
