package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	List(ctx context.Context) ([]dao.Payment, error)
	FindByID(ctx context.Context, id uint) (dao.Payment, error)
	ListByActivity(ctx context.Context, activityID uint) ([]dao.Payment, error)
	ListByMember(ctx context.Context, memberID uint) ([]dao.Payment, error)
	ListByPerson(ctx context.Context, personID uint) ([]dao.Payment, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]dao.Payment, error)
	InsertGuarded(ctx context.Context, payment dao.Payment, guard func(alreadyPaid float64) error) (dao.Payment, error)
	Update(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) domainToDao(p domain.Payment) dao.Payment {
	return dao.Payment{
		ID:           p.ID,
		AttendanceID: p.AttendanceID,
		Date:         p.Date,
		Amount:       p.Amount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:           p.ID,
		AttendanceID: p.AttendanceID,
		Date:         p.Date,
		Amount:       p.Amount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PaymentRepository) daosToDomain(payments []dao.Payment) []domain.Payment {
	result := make([]domain.Payment, len(payments))
	for i, p := range payments {
		result[i] = r.daoToDomain(p)
	}

	return result
}

func (r *PaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(payments), nil
}

func (r *PaymentRepository) GetPayment(ctx context.Context, id uint) (domain.Payment, error) {
	payment, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(payment), nil
}

func (r *PaymentRepository) ListByActivity(ctx context.Context, activityID uint) ([]domain.Payment, error) {
	payments, err := r.dao.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByActivity -> %w", err)
	}

	return r.daosToDomain(payments), nil
}

func (r *PaymentRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.Payment, error) {
	payments, err := r.dao.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByMember -> %w", err)
	}

	return r.daosToDomain(payments), nil
}

func (r *PaymentRepository) ListByPerson(ctx context.Context, personID uint) ([]domain.Payment, error) {
	payments, err := r.dao.ListByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByPerson -> %w", err)
	}

	return r.daosToDomain(payments), nil
}

func (r *PaymentRepository) ListBetween(ctx context.Context, start, end time.Time) ([]domain.Payment, error) {
	payments, err := r.dao.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListBetween -> %w", err)
	}

	return r.daosToDomain(payments), nil
}

// RecordPayment persists the payment after the guard approves it against the
// activity's paid total, both inside one transaction.
func (r *PaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment, guard func(alreadyPaid float64) error) (domain.Payment, error) {
	created, err := r.dao.InsertGuarded(ctx, r.domainToDao(payment), guard)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.InsertGuarded -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
