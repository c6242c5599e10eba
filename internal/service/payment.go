package service

import (
	"context"
	"fmt"
	"time"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
)

var ErrPaymentNotFound = repository.ErrPaymentNotFound

type PaymentRepository interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id uint) (domain.Payment, error)
	ListByActivity(ctx context.Context, activityID uint) ([]domain.Payment, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.Payment, error)
	ListByPerson(ctx context.Context, personID uint) ([]domain.Payment, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]domain.Payment, error)
	RecordPayment(ctx context.Context, payment domain.Payment, guard func(alreadyPaid float64) error) (domain.Payment, error)
	UpdatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	DeletePayment(ctx context.Context, id uint) error
}

type PaymentService struct {
	repo           PaymentRepository
	activityRepo   ActivityRepository
	attendanceRepo AttendanceRepository
	discountRepo   DiscountRepository
}

func NewPaymentService(
	repo PaymentRepository,
	activityRepo ActivityRepository,
	attendanceRepo AttendanceRepository,
	discountRepo DiscountRepository,
) *PaymentService {
	return &PaymentService{
		repo:           repo,
		activityRepo:   activityRepo,
		attendanceRepo: attendanceRepo,
		discountRepo:   discountRepo,
	}
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPayments -> %w", err)
	}

	return payments, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id uint) (domain.Payment, error) {
	payment, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.GetPayment -> %w", err)
	}

	return payment, nil
}

func (s *PaymentService) ListByActivity(ctx context.Context, activityID uint) ([]domain.Payment, error) {
	payments, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByActivity -> %w", err)
	}

	return payments, nil
}

func (s *PaymentService) ListByMember(ctx context.Context, memberID uint) ([]domain.Payment, error) {
	payments, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByMember -> %w", err)
	}

	return payments, nil
}

func (s *PaymentService) ListByPerson(ctx context.Context, personID uint) ([]domain.Payment, error) {
	payments, err := s.repo.ListByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByPerson -> %w", err)
	}

	return payments, nil
}

// TotalForActivity sums recorded payments across every attendance of the
// activity.
func (s *PaymentService) TotalForActivity(ctx context.Context, activityID uint) (float64, error) {
	if _, err := s.activityRepo.GetActivity(ctx, activityID); err != nil {
		return 0, fmt.Errorf("s.activityRepo.GetActivity -> %w", err)
	}

	payments, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.ListByActivity -> %w", err)
	}

	return domain.TotalPaid(payments), nil
}

// RecordMemberPayment records a payment on the member's own attendance row
// of the activity.
func (s *PaymentService) RecordMemberPayment(ctx context.Context, activityID, memberID uint, amount float64, date time.Time) (domain.Payment, error) {
	attendance, err := s.findMemberAttendance(ctx, activityID, memberID)
	if err != nil {
		return domain.Payment{}, err
	}

	return s.record(ctx, attendance, amount, date)
}

// RecordGuestPayment records a payment on a guest's attendance row. The
// payment still settles the whole group's balance, so the same guard applies.
func (s *PaymentService) RecordGuestPayment(ctx context.Context, activityID, personID uint, amount float64, date time.Time) (domain.Payment, error) {
	attendance, err := s.findGuestAttendance(ctx, activityID, personID)
	if err != nil {
		return domain.Payment{}, err
	}

	return s.record(ctx, attendance, amount, date)
}

func (s *PaymentService) UpdatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if payment.Amount <= 0 {
		return domain.Payment{}, domain.ErrNonPositiveAmount
	}

	updated, err := s.repo.UpdatePayment(ctx, payment)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.UpdatePayment -> %w", err)
	}

	return updated, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id uint) error {
	if err := s.repo.DeletePayment(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeletePayment -> %w", err)
	}

	return nil
}

// record runs the pricing pipeline and hands the resulting balance check to
// the repository, which re-reads the paid total under the activity lock.
func (s *PaymentService) record(ctx context.Context, attendance domain.Attendance, amount float64, date time.Time) (domain.Payment, error) {
	activity, err := s.activityRepo.GetActivity(ctx, attendance.ActivityID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.activityRepo.GetActivity -> %w", err)
	}

	attendances, err := s.attendanceRepo.ListByActivity(ctx, attendance.ActivityID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.attendanceRepo.ListByActivity -> %w", err)
	}

	tiers, err := s.discountRepo.ListTiers(ctx)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.discountRepo.ListTiers -> %w", err)
	}

	quote := domain.ComputeQuote(activity.Cotisation, len(attendances), tiers)

	payment := domain.Payment{
		AttendanceID: attendance.ID,
		Date:         date,
		Amount:       amount,
	}

	created, err := s.repo.RecordPayment(ctx, payment, func(alreadyPaid float64) error {
		return domain.ValidateNewPayment(amount, quote.NetDue, alreadyPaid)
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.RecordPayment -> %w", err)
	}

	return created, nil
}

func (s *PaymentService) findMemberAttendance(ctx context.Context, activityID, memberID uint) (domain.Attendance, error) {
	attendances, err := s.attendanceRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.attendanceRepo.ListByActivity -> %w", err)
	}

	for _, a := range attendances {
		if !a.IsGuest() && a.MemberID != nil && *a.MemberID == memberID {
			return a, nil
		}
	}

	return domain.Attendance{}, ErrAttendanceNotFound
}

func (s *PaymentService) findGuestAttendance(ctx context.Context, activityID, personID uint) (domain.Attendance, error) {
	attendances, err := s.attendanceRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.attendanceRepo.ListByActivity -> %w", err)
	}

	for _, a := range attendances {
		if a.IsGuest() && a.PersonID != nil && *a.PersonID == personID {
			return a, nil
		}
	}

	return domain.Attendance{}, ErrAttendanceNotFound
}
