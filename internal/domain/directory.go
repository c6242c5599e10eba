package domain

import "time"

// ServiceUnit groups persons by regional service affiliation. Units are a
// reporting dimension; assignment history is not tracked.
type ServiceUnit struct {
	ID          uint
	Description string
	Region      string
}

type Person struct {
	ID        uint
	LastName  string
	FirstName string
	BirthDate time.Time
	UnitID    *uint
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member is a person with standing affiliation, eligible to bring
// non-member guests to activities. A member shares its id with the
// underlying person.
type Member struct {
	Person
	JoinedAt time.Time
}

// Participant is an attendance row joined with the attendee's identity,
// as shown on an activity's participant list.
type Participant struct {
	AttendanceID         uint
	ActivityID           uint
	PersonID             uint
	LastName             string
	FirstName            string
	IsMember             bool
	AccompanyingMemberID *uint
}
