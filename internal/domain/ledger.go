package domain

import (
	"fmt"
	"time"
)

// Payment is a partial settlement of an activity's cotisation, always tied
// to one attendance row and therefore to one payer.
type Payment struct {
	ID           uint
	AttendanceID uint
	Date         time.Time
	Amount       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BalanceExceededError reports a payment that would push an activity past
// its discounted due amount.
type BalanceExceededError struct {
	Proposed    float64 `json:"proposed"`
	AlreadyPaid float64 `json:"already_paid"`
	NetDue      float64 `json:"net_due"`
	Remaining   float64 `json:"remaining"`
}

func (e *BalanceExceededError) Error() string {
	return fmt.Sprintf("payment of %.2f exceeds the remaining balance of %.2f (due %.2f, paid %.2f)",
		e.Proposed, e.Remaining, e.NetDue, e.AlreadyPaid)
}

func TotalPaid(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}

	return total
}

// Remaining clamps at zero: overpayment is blocked at write time, the read
// path never reports a negative balance regardless.
func Remaining(netDue, paid float64) float64 {
	if remaining := netDue - paid; remaining > 0 {
		return remaining
	}

	return 0
}

// ValidateNewPayment rejects any payment above the remaining balance.
// Once an activity is fully paid the remaining balance is zero and every
// further payment is refused, whatever its amount.
func ValidateNewPayment(amount, netDue, alreadyPaid float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	remaining := Remaining(netDue, alreadyPaid)
	if amount > remaining {
		return &BalanceExceededError{
			Proposed:    amount,
			AlreadyPaid: alreadyPaid,
			NetDue:      netDue,
			Remaining:   remaining,
		}
	}

	return nil
}
