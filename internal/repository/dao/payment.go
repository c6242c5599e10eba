package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) List(ctx context.Context) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).Order("date DESC").Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *PaymentDAO) FindByID(ctx context.Context, id uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) ListByActivity(ctx context.Context, activityID uint) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Joins("JOIN attendances ON attendances.id = payments.attendance_id").
		Where("attendances.activity_id = ?", activityID).
		Order("payments.date ASC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

// ListByMember returns payments recorded against the member's own
// attendance rows and against guest rows the member accompanied.
func (d *PaymentDAO) ListByMember(ctx context.Context, memberID uint) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Joins("JOIN attendances ON attendances.id = payments.attendance_id").
		Where("attendances.member_id = ?", memberID).
		Order("payments.date ASC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *PaymentDAO) ListByPerson(ctx context.Context, personID uint) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Joins("JOIN attendances ON attendances.id = payments.attendance_id").
		Where("attendances.person_id = ?", personID).
		Order("payments.date ASC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *PaymentDAO) ListBetween(ctx context.Context, start, end time.Time) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

// InsertGuarded records a payment against an attendance after running the
// caller's balance check inside the transaction. The attendance's activity
// row is locked so two concurrent payments cannot both pass the check
// against a stale total.
func (d *PaymentDAO) InsertGuarded(ctx context.Context, payment Payment, guard func(alreadyPaid float64) error) (Payment, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attendance Attendance
		if err := tx.First(&attendance, payment.AttendanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAttendanceNotFound
			}

			return err
		}

		var activity Activity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&activity, attendance.ActivityID).Error; err != nil {
			return err
		}

		var alreadyPaid float64
		if err := tx.Model(&Payment{}).
			Select("COALESCE(SUM(payments.amount), 0)").
			Joins("JOIN attendances ON attendances.id = payments.attendance_id").
			Where("attendances.activity_id = ?", attendance.ActivityID).
			Scan(&alreadyPaid).Error; err != nil {
			return err
		}

		if err := guard(alreadyPaid); err != nil {
			return err
		}

		return tx.Create(&payment).Error
	})
	if err != nil {
		return Payment{}, err
	}

	return payment, nil
}

func (d *PaymentDAO) Update(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"date":   payment.Date,
			"amount": payment.Amount,
		})
	if result.Error != nil {
		return Payment{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Payment{}, ErrPaymentNotFound
	}

	return d.FindByID(ctx, payment.ID)
}

func (d *PaymentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
