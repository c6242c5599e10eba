package domain

import (
	"errors"
	"time"
)

var ErrMalformedAttendance = errors.New("attendance must reference a member, or a person with an accompanying member")

// Attendance links an activity to one attendee. A member attendance carries
// only MemberID. A guest attendance carries PersonID plus the accompanying
// member's id in MemberID; that member must attend the activity as well.
type Attendance struct {
	ID         uint
	ActivityID uint
	MemberID   *uint
	PersonID   *uint
	CreatedAt  time.Time
}

func (a Attendance) IsGuest() bool {
	return a.PersonID != nil
}

// Payer identifies who owes for an attendance: either a member on their own
// behalf, or a guest sponsored by an accompanying member.
type Payer interface {
	isPayer()
}

type MemberPayer struct {
	MemberID uint
}

type GuestPayer struct {
	PersonID             uint
	AccompanyingMemberID uint
}

func (MemberPayer) isPayer() {}
func (GuestPayer) isPayer()  {}

// Payer resolves the attendance row into its payer, or fails with
// ErrMalformedAttendance for rows that satisfy neither shape.
func (a Attendance) Payer() (Payer, error) {
	switch {
	case a.PersonID != nil && a.MemberID != nil:
		return GuestPayer{PersonID: *a.PersonID, AccompanyingMemberID: *a.MemberID}, nil
	case a.PersonID == nil && a.MemberID != nil:
		return MemberPayer{MemberID: *a.MemberID}, nil
	default:
		return nil, ErrMalformedAttendance
	}
}
