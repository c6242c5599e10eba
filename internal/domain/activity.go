package domain

import (
	"errors"
	"time"
)

var (
	ErrPastDate           = errors.New("activity date cannot be before today")
	ErrPriorityOutOfRange = errors.New("priority must be an integer between 1 and 10")
)

// Activity is a paid group event. Cotisation is the flat fee owed for the
// whole activity, not a per-attendee price.
type Activity struct {
	ID          uint
	Date        time.Time
	Description string
	Priority    int
	Region      string
	Cotisation  float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate enforces the creation/update rules: a date no earlier than today,
// a priority within [1, 10] and a cotisation inside the configured bounds.
func (a Activity) Validate(now time.Time, bounds *CotisationBounds) error {
	if startOfDay(a.Date).Before(startOfDay(now)) {
		return ErrPastDate
	}
	if a.Priority < 1 || a.Priority > 10 {
		return ErrPriorityOutOfRange
	}

	return ValidateCotisation(a.Cotisation, bounds)
}

// Request dates parse as UTC midnight, so both sides of the comparison are
// reduced to their UTC calendar day regardless of the server's zone.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
