package domain

import "time"

// ActivityBalance is the derived financial picture of one activity:
// headcount, priced cotisation and settlement state. It is computed, never
// persisted.
type ActivityBalance struct {
	ActivityID       uint          `json:"activity_id"`
	Date             time.Time     `json:"date"`
	Description      string        `json:"description"`
	Region           string        `json:"region"`
	ParticipantCount int           `json:"participant_count"`
	MemberCount      int           `json:"member_count"`
	GuestCount       int           `json:"guest_count"`
	GrossDue         float64       `json:"gross_due"`
	Tier             *DiscountTier `json:"tier,omitempty"`
	DiscountAmount   float64       `json:"discount_amount"`
	NetDue           float64       `json:"net_due"`
	TotalPaid        float64       `json:"total_paid"`
	Remaining        float64       `json:"remaining"`
}

// ComputeBalance folds an activity's attendances and payments into its
// balance. Attendance rows that resolve to no valid payer still count a
// head, mirroring how the attendance list is counted at registration time.
func ComputeBalance(activity Activity, attendances []Attendance, payments []Payment, tiers []DiscountTier) ActivityBalance {
	balance := ActivityBalance{
		ActivityID:       activity.ID,
		Date:             activity.Date,
		Description:      activity.Description,
		Region:           activity.Region,
		ParticipantCount: len(attendances),
	}

	for _, att := range attendances {
		if att.IsGuest() {
			balance.GuestCount++
		} else {
			balance.MemberCount++
		}
	}

	quote := ComputeQuote(activity.Cotisation, balance.ParticipantCount, tiers)
	balance.GrossDue = quote.GrossDue
	balance.Tier = quote.Tier
	balance.DiscountAmount = quote.DiscountAmount
	balance.NetDue = quote.NetDue

	balance.TotalPaid = TotalPaid(payments)
	balance.Remaining = Remaining(balance.NetDue, balance.TotalPaid)

	return balance
}
