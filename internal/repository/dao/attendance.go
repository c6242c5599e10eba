package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrAlreadyAttending   = errors.New("already attending this activity")
)

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

func (d *AttendanceDAO) FindByID(ctx context.Context, id uint) (Attendance, error) {
	var attendance Attendance

	result := d.db.WithContext(ctx).First(&attendance, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Attendance{}, ErrAttendanceNotFound
		}

		return Attendance{}, result.Error
	}

	return attendance, nil
}

func (d *AttendanceDAO) ListByActivity(ctx context.Context, activityID uint) ([]Attendance, error) {
	var attendances []Attendance

	result := d.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("id ASC").
		Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}

	return attendances, nil
}

func (d *AttendanceDAO) ListByMember(ctx context.Context, memberID uint) ([]Attendance, error) {
	var attendances []Attendance

	result := d.db.WithContext(ctx).
		Where("member_id = ? AND person_id IS NULL", memberID).
		Order("id ASC").
		Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}

	return attendances, nil
}

// InsertMember registers a member's own attendance. The member row carries
// no person_id, so the unique index cannot catch duplicates; the check runs
// inside the same transaction instead.
func (d *AttendanceDAO) InsertMember(ctx context.Context, activityID, memberID uint) (Attendance, error) {
	var attendance Attendance

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Attendance{}).
			Where("activity_id = ? AND member_id = ? AND person_id IS NULL", activityID, memberID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyAttending
		}

		attendance = Attendance{
			ActivityID: activityID,
			MemberID:   &memberID,
		}

		return tx.Create(&attendance).Error
	})
	if err != nil {
		return Attendance{}, err
	}

	return attendance, nil
}

// InsertGuest registers a non-member participant accompanied by a member.
// The (activity_id, person_id) unique index guards against duplicates.
func (d *AttendanceDAO) InsertGuest(ctx context.Context, activityID, personID, accompanyingMemberID uint) (Attendance, error) {
	attendance := Attendance{
		ActivityID: activityID,
		MemberID:   &accompanyingMemberID,
		PersonID:   &personID,
	}

	result := d.db.WithContext(ctx).Create(&attendance)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Attendance{}, ErrAlreadyAttending
		}

		return Attendance{}, result.Error
	}

	return attendance, nil
}

// Delete cascades to the attendance's payments through the foreign key
// constraint.
func (d *AttendanceDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Attendance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttendanceNotFound
	}

	return nil
}

type ParticipantRow struct {
	AttendanceID         uint
	ActivityID           uint
	PersonID             uint
	LastName             string
	FirstName            string
	IsMember             bool
	AccompanyingMemberID *uint
}

// ListParticipants resolves attendance rows to people. Member rows join
// through the members table, guest rows directly through people.
func (d *AttendanceDAO) ListParticipants(ctx context.Context, activityID uint) ([]ParticipantRow, error) {
	var rows []ParticipantRow

	err := d.db.WithContext(ctx).Model(&Attendance{}).
		Select(`attendances.id AS attendance_id,
			attendances.activity_id,
			people.id AS person_id,
			people.last_name,
			people.first_name,
			attendances.person_id IS NULL AS is_member,
			CASE WHEN attendances.person_id IS NULL THEN NULL ELSE attendances.member_id END AS accompanying_member_id`).
		Joins("JOIN people ON people.id = COALESCE(attendances.person_id, attendances.member_id)").
		Where("attendances.activity_id = ?", activityID).
		Order("attendances.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
