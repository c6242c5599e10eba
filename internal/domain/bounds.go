package domain

import (
	"errors"
	"time"
)

var ErrInvalidBounds = errors.New("bounds must be non-negative and lower cannot exceed upper")

// CotisationBounds is the organization-wide allowed range for activity
// cotisations. At most one row exists; a nil *CotisationBounds means
// nothing is configured yet and every amount is accepted.
type CotisationBounds struct {
	ID        uint
	Lower     float64
	Upper     float64
	UpdatedAt time.Time
}

func (b CotisationBounds) Validate() error {
	if b.Lower < 0 || b.Upper < 0 {
		return ErrInvalidBounds
	}
	if b.Lower > b.Upper {
		return ErrInvalidBounds
	}

	return nil
}

func (b CotisationBounds) Contains(amount float64) bool {
	return amount >= b.Lower && amount <= b.Upper
}
