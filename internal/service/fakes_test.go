package service_test

import (
	"context"
	"time"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
	"github.com/association-manager/association-api/internal/service"
)

type fakeSettingsRepo struct {
	bounds *domain.CotisationBounds
}

func (f *fakeSettingsRepo) GetBounds(_ context.Context) (domain.CotisationBounds, error) {
	if f.bounds == nil {
		return domain.CotisationBounds{}, service.ErrBoundsNotConfigured
	}
	return *f.bounds, nil
}

func (f *fakeSettingsRepo) CreateBounds(_ context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	if f.bounds != nil {
		return domain.CotisationBounds{}, service.ErrBoundsAlreadyConfigured
	}
	bounds.ID = 1
	f.bounds = &bounds
	return bounds, nil
}

func (f *fakeSettingsRepo) UpdateBounds(_ context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	if f.bounds == nil {
		return domain.CotisationBounds{}, service.ErrBoundsNotConfigured
	}
	bounds.ID = f.bounds.ID
	f.bounds = &bounds
	return bounds, nil
}

type fakeDiscountRepo struct {
	tiers  []domain.DiscountTier
	nextID uint
}

func (f *fakeDiscountRepo) ListTiers(_ context.Context) ([]domain.DiscountTier, error) {
	return f.tiers, nil
}

func (f *fakeDiscountRepo) GetTier(_ context.Context, id uint) (domain.DiscountTier, error) {
	for _, t := range f.tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.DiscountTier{}, service.ErrTierNotFound
}

func (f *fakeDiscountRepo) CreateTier(_ context.Context, tier domain.DiscountTier) (domain.DiscountTier, error) {
	for _, t := range f.tiers {
		if t.MinParticipants == tier.MinParticipants {
			return domain.DiscountTier{}, service.ErrTierThresholdExists
		}
	}
	f.nextID++
	tier.ID = f.nextID
	f.tiers = append(f.tiers, tier)
	return tier, nil
}

func (f *fakeDiscountRepo) UpdateTier(_ context.Context, tier domain.DiscountTier) (domain.DiscountTier, error) {
	for i, t := range f.tiers {
		if t.ID == tier.ID {
			f.tiers[i] = tier
			return tier, nil
		}
	}
	return domain.DiscountTier{}, service.ErrTierNotFound
}

func (f *fakeDiscountRepo) DeleteTier(_ context.Context, id uint) error {
	for i, t := range f.tiers {
		if t.ID == id {
			f.tiers = append(f.tiers[:i], f.tiers[i+1:]...)
			return nil
		}
	}
	return service.ErrTierNotFound
}

type fakeActivityRepo struct {
	activities    []domain.Activity
	nextID        uint
	regionCounts  []domain.RegionActivityCount
	participation []domain.ActivityParticipation
}

func (f *fakeActivityRepo) ListActivities(_ context.Context) ([]domain.Activity, error) {
	return f.activities, nil
}

func (f *fakeActivityRepo) GetActivity(_ context.Context, id uint) (domain.Activity, error) {
	for _, a := range f.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Activity{}, service.ErrActivityNotFound
}

func (f *fakeActivityRepo) ListActivitiesBetween(_ context.Context, start, end time.Time) ([]domain.Activity, error) {
	var result []domain.Activity
	for _, a := range f.activities {
		if !a.Date.Before(start) && !a.Date.After(end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeActivityRepo) CreateActivity(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	f.nextID++
	activity.ID = f.nextID
	f.activities = append(f.activities, activity)
	return activity, nil
}

func (f *fakeActivityRepo) UpdateActivity(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	for i, a := range f.activities {
		if a.ID == activity.ID {
			f.activities[i] = activity
			return activity, nil
		}
	}
	return domain.Activity{}, service.ErrActivityNotFound
}

func (f *fakeActivityRepo) DeleteActivity(_ context.Context, id uint) error {
	for i, a := range f.activities {
		if a.ID == id {
			f.activities = append(f.activities[:i], f.activities[i+1:]...)
			return nil
		}
	}
	return service.ErrActivityNotFound
}

func (f *fakeActivityRepo) CountByRegion(_ context.Context, _, _ time.Time) ([]domain.RegionActivityCount, error) {
	return f.regionCounts, nil
}

func (f *fakeActivityRepo) CountParticipants(_ context.Context, _, _ time.Time) ([]domain.ActivityParticipation, error) {
	return f.participation, nil
}

type fakeAttendanceRepo struct {
	attendances  []domain.Attendance
	participants []domain.Participant
	nextID       uint
}

func (f *fakeAttendanceRepo) GetAttendance(_ context.Context, id uint) (domain.Attendance, error) {
	for _, a := range f.attendances {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Attendance{}, service.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByActivity(_ context.Context, activityID uint) ([]domain.Attendance, error) {
	var result []domain.Attendance
	for _, a := range f.attendances {
		if a.ActivityID == activityID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByMember(_ context.Context, memberID uint) ([]domain.Attendance, error) {
	var result []domain.Attendance
	for _, a := range f.attendances {
		if !a.IsGuest() && a.MemberID != nil && *a.MemberID == memberID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) RegisterMember(_ context.Context, activityID, memberID uint) (domain.Attendance, error) {
	for _, a := range f.attendances {
		if a.ActivityID == activityID && !a.IsGuest() && a.MemberID != nil && *a.MemberID == memberID {
			return domain.Attendance{}, service.ErrAlreadyAttending
		}
	}
	f.nextID++
	attendance := domain.Attendance{
		ID:         f.nextID,
		ActivityID: activityID,
		MemberID:   &memberID,
	}
	f.attendances = append(f.attendances, attendance)
	return attendance, nil
}

func (f *fakeAttendanceRepo) RegisterGuest(_ context.Context, activityID, personID, accompanyingMemberID uint) (domain.Attendance, error) {
	for _, a := range f.attendances {
		if a.ActivityID == activityID && a.PersonID != nil && *a.PersonID == personID {
			return domain.Attendance{}, service.ErrAlreadyAttending
		}
	}
	f.nextID++
	attendance := domain.Attendance{
		ID:         f.nextID,
		ActivityID: activityID,
		MemberID:   &accompanyingMemberID,
		PersonID:   &personID,
	}
	f.attendances = append(f.attendances, attendance)
	return attendance, nil
}

func (f *fakeAttendanceRepo) DeleteAttendance(_ context.Context, id uint) error {
	for i, a := range f.attendances {
		if a.ID == id {
			f.attendances = append(f.attendances[:i], f.attendances[i+1:]...)
			return nil
		}
	}
	return service.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListParticipants(_ context.Context, activityID uint) ([]domain.Participant, error) {
	var result []domain.Participant
	for _, p := range f.participants {
		if p.ActivityID == activityID {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakePaymentRepo struct {
	payments []domain.Payment
	nextID   uint

	// attendances lets the guard sum the paid total per activity the way
	// the real transaction does.
	attendances *fakeAttendanceRepo
}

func (f *fakePaymentRepo) ListPayments(_ context.Context) ([]domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) GetPayment(_ context.Context, id uint) (domain.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Payment{}, service.ErrPaymentNotFound
}

func (f *fakePaymentRepo) activityOf(attendanceID uint) uint {
	if f.attendances == nil {
		return 0
	}
	for _, a := range f.attendances.attendances {
		if a.ID == attendanceID {
			return a.ActivityID
		}
	}
	return 0
}

func (f *fakePaymentRepo) ListByActivity(_ context.Context, activityID uint) ([]domain.Payment, error) {
	var result []domain.Payment
	for _, p := range f.payments {
		if f.activityOf(p.AttendanceID) == activityID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) ListByMember(_ context.Context, memberID uint) ([]domain.Payment, error) {
	var result []domain.Payment
	for _, p := range f.payments {
		for _, a := range f.attendances.attendances {
			if a.ID == p.AttendanceID && a.MemberID != nil && *a.MemberID == memberID {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) ListByPerson(_ context.Context, personID uint) ([]domain.Payment, error) {
	var result []domain.Payment
	for _, p := range f.payments {
		for _, a := range f.attendances.attendances {
			if a.ID == p.AttendanceID && a.PersonID != nil && *a.PersonID == personID {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) ListBetween(_ context.Context, start, end time.Time) ([]domain.Payment, error) {
	var result []domain.Payment
	for _, p := range f.payments {
		if !p.Date.Before(start) && !p.Date.After(end) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) RecordPayment(ctx context.Context, payment domain.Payment, guard func(alreadyPaid float64) error) (domain.Payment, error) {
	activityID := f.activityOf(payment.AttendanceID)

	var alreadyPaid float64
	for _, p := range f.payments {
		if f.activityOf(p.AttendanceID) == activityID {
			alreadyPaid += p.Amount
		}
	}

	if err := guard(alreadyPaid); err != nil {
		return domain.Payment{}, err
	}

	f.nextID++
	payment.ID = f.nextID
	f.payments = append(f.payments, payment)
	return payment, nil
}

func (f *fakePaymentRepo) UpdatePayment(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	for i, p := range f.payments {
		if p.ID == payment.ID {
			payment.AttendanceID = p.AttendanceID
			f.payments[i] = payment
			return payment, nil
		}
	}
	return domain.Payment{}, service.ErrPaymentNotFound
}

func (f *fakePaymentRepo) DeletePayment(_ context.Context, id uint) error {
	for i, p := range f.payments {
		if p.ID == id {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return service.ErrPaymentNotFound
}

type fakeDirectoryRepo struct {
	units        []domain.ServiceUnit
	persons      []domain.Person
	members      []domain.Member
	personUnits  []repository.PersonUnit
	nextPersonID uint
}

func (f *fakeDirectoryRepo) ListUnits(_ context.Context) ([]domain.ServiceUnit, error) {
	return f.units, nil
}

func (f *fakeDirectoryRepo) GetUnit(_ context.Context, id uint) (domain.ServiceUnit, error) {
	for _, u := range f.units {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.ServiceUnit{}, service.ErrUnitNotFound
}

func (f *fakeDirectoryRepo) CreateUnit(_ context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error) {
	unit.ID = uint(len(f.units) + 1)
	f.units = append(f.units, unit)
	return unit, nil
}

func (f *fakeDirectoryRepo) UpdateUnit(_ context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error) {
	for i, u := range f.units {
		if u.ID == unit.ID {
			f.units[i] = unit
			return unit, nil
		}
	}
	return domain.ServiceUnit{}, service.ErrUnitNotFound
}

func (f *fakeDirectoryRepo) DeleteUnit(_ context.Context, id uint) error {
	for i, u := range f.units {
		if u.ID == id {
			f.units = append(f.units[:i], f.units[i+1:]...)
			return nil
		}
	}
	return service.ErrUnitNotFound
}

func (f *fakeDirectoryRepo) ListPersons(_ context.Context) ([]domain.Person, error) {
	return f.persons, nil
}

func (f *fakeDirectoryRepo) GetPerson(_ context.Context, id uint) (domain.Person, error) {
	for _, p := range f.persons {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Person{}, service.ErrPersonNotFound
}

func (f *fakeDirectoryRepo) CreatePerson(_ context.Context, person domain.Person) (domain.Person, error) {
	f.nextPersonID++
	person.ID = f.nextPersonID
	f.persons = append(f.persons, person)
	return person, nil
}

func (f *fakeDirectoryRepo) UpdatePerson(_ context.Context, person domain.Person) (domain.Person, error) {
	for i, p := range f.persons {
		if p.ID == person.ID {
			f.persons[i] = person
			return person, nil
		}
	}
	return domain.Person{}, service.ErrPersonNotFound
}

func (f *fakeDirectoryRepo) DeletePerson(_ context.Context, id uint) error {
	for i, p := range f.persons {
		if p.ID == id {
			f.persons = append(f.persons[:i], f.persons[i+1:]...)
			return nil
		}
	}
	return service.ErrPersonNotFound
}

func (f *fakeDirectoryRepo) ListMembers(_ context.Context) ([]domain.Member, error) {
	return f.members, nil
}

func (f *fakeDirectoryRepo) GetMember(_ context.Context, personID uint) (domain.Member, error) {
	for _, m := range f.members {
		if m.ID == personID {
			return m, nil
		}
	}
	return domain.Member{}, service.ErrMemberNotFound
}

func (f *fakeDirectoryRepo) EnrollMember(_ context.Context, personID uint, joinedAt time.Time) (domain.Member, error) {
	for _, m := range f.members {
		if m.ID == personID {
			return domain.Member{}, service.ErrAlreadyMember
		}
	}
	for _, p := range f.persons {
		if p.ID == personID {
			member := domain.Member{Person: p, JoinedAt: joinedAt}
			f.members = append(f.members, member)
			return member, nil
		}
	}
	return domain.Member{}, service.ErrPersonNotFound
}

func (f *fakeDirectoryRepo) DeleteMember(_ context.Context, personID uint) error {
	for i, m := range f.members {
		if m.ID == personID {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return service.ErrMemberNotFound
}

func (f *fakeDirectoryRepo) ListPersonUnits(_ context.Context) ([]repository.PersonUnit, error) {
	return f.personUnits, nil
}

func uintPtr(v uint) *uint {
	return &v
}
