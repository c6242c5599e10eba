package repository

import (
	"context"
	"fmt"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository/dao"
)

var (
	ErrAttendanceNotFound = dao.ErrAttendanceNotFound
	ErrAlreadyAttending   = dao.ErrAlreadyAttending
)

type AttendanceDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Attendance, error)
	ListByActivity(ctx context.Context, activityID uint) ([]dao.Attendance, error)
	ListByMember(ctx context.Context, memberID uint) ([]dao.Attendance, error)
	InsertMember(ctx context.Context, activityID, memberID uint) (dao.Attendance, error)
	InsertGuest(ctx context.Context, activityID, personID, accompanyingMemberID uint) (dao.Attendance, error)
	Delete(ctx context.Context, id uint) error
	ListParticipants(ctx context.Context, activityID uint) ([]dao.ParticipantRow, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) daoToDomain(a dao.Attendance) domain.Attendance {
	return domain.Attendance{
		ID:         a.ID,
		ActivityID: a.ActivityID,
		MemberID:   a.MemberID,
		PersonID:   a.PersonID,
		CreatedAt:  a.CreatedAt,
	}
}

func (r *AttendanceRepository) daosToDomain(attendances []dao.Attendance) []domain.Attendance {
	result := make([]domain.Attendance, len(attendances))
	for i, a := range attendances {
		result[i] = r.daoToDomain(a)
	}

	return result
}

func (r *AttendanceRepository) GetAttendance(ctx context.Context, id uint) (domain.Attendance, error) {
	attendance, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(attendance), nil
}

func (r *AttendanceRepository) ListByActivity(ctx context.Context, activityID uint) ([]domain.Attendance, error) {
	attendances, err := r.dao.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByActivity -> %w", err)
	}

	return r.daosToDomain(attendances), nil
}

func (r *AttendanceRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.Attendance, error) {
	attendances, err := r.dao.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByMember -> %w", err)
	}

	return r.daosToDomain(attendances), nil
}

func (r *AttendanceRepository) RegisterMember(ctx context.Context, activityID, memberID uint) (domain.Attendance, error) {
	attendance, err := r.dao.InsertMember(ctx, activityID, memberID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.InsertMember -> %w", err)
	}

	return r.daoToDomain(attendance), nil
}

func (r *AttendanceRepository) RegisterGuest(ctx context.Context, activityID, personID, accompanyingMemberID uint) (domain.Attendance, error) {
	attendance, err := r.dao.InsertGuest(ctx, activityID, personID, accompanyingMemberID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.InsertGuest -> %w", err)
	}

	return r.daoToDomain(attendance), nil
}

func (r *AttendanceRepository) DeleteAttendance(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *AttendanceRepository) ListParticipants(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	rows, err := r.dao.ListParticipants(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListParticipants -> %w", err)
	}

	participants := make([]domain.Participant, len(rows))
	for i, row := range rows {
		participants[i] = domain.Participant{
			AttendanceID:         row.AttendanceID,
			ActivityID:           row.ActivityID,
			PersonID:             row.PersonID,
			LastName:             row.LastName,
			FirstName:            row.FirstName,
			IsMember:             row.IsMember,
			AccompanyingMemberID: row.AccompanyingMemberID,
		}
	}

	return participants, nil
}
