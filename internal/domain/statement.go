package domain

import "time"

// AppliedTier records one discount tier seen in an aggregate, with the
// attendee headcount that triggered it.
type AppliedTier struct {
	TierID           uint    `json:"tier_id"`
	MinParticipants  int     `json:"min_participants"`
	Percentage       float64 `json:"percentage"`
	Description      string  `json:"description"`
	ParticipantCount int     `json:"participant_count"`
}

// RegionStatement sums activity balances across all activities that share a
// region.
type RegionStatement struct {
	Region           string        `json:"region"`
	ActivityCount    int           `json:"activity_count"`
	ParticipantCount int           `json:"participant_count"`
	MemberCount      int           `json:"member_count"`
	GuestCount       int           `json:"guest_count"`
	GrossDue         float64       `json:"gross_due"`
	DiscountAmount   float64       `json:"discount_amount"`
	NetDue           float64       `json:"net_due"`
	TotalPaid        float64       `json:"total_paid"`
	Remaining        float64       `json:"remaining"`
	AppliedTiers     []AppliedTier `json:"applied_tiers,omitempty"`
}

// UnitStatement sums the balances of every activity attended by at least one
// person, member or guest, currently assigned to the service unit. Current
// assignment is used; where a person was assigned at the time of the activity
// is not tracked. PersonCount is the unit's assigned headcount, not the
// number of attendees.
type UnitStatement struct {
	UnitID           uint          `json:"unit_id"`
	Description      string        `json:"description"`
	Region           string        `json:"region"`
	PersonCount      int           `json:"person_count"`
	ActivityCount    int           `json:"activity_count"`
	ParticipantCount int           `json:"participant_count"`
	GrossDue         float64       `json:"gross_due"`
	DiscountAmount   float64       `json:"discount_amount"`
	NetDue           float64       `json:"net_due"`
	TotalPaid        float64       `json:"total_paid"`
	Remaining        float64       `json:"remaining"`
	AppliedTiers     []AppliedTier `json:"applied_tiers,omitempty"`
}

// MemberStatement sums a member's own activities and tallies the guests the
// member brought. Guest amounts are carried by the guests' own statements
// for display; financially the member answers for them.
type MemberStatement struct {
	MemberID       uint          `json:"member_id"`
	LastName       string        `json:"last_name"`
	FirstName      string        `json:"first_name"`
	ActivityCount  int           `json:"activity_count"`
	GuestsBrought  int           `json:"guests_brought"`
	GrossDue       float64       `json:"gross_due"`
	DiscountAmount float64       `json:"discount_amount"`
	NetDue         float64       `json:"net_due"`
	TotalPaid      float64       `json:"total_paid"`
	Remaining      float64       `json:"remaining"`
	AppliedTiers   []AppliedTier `json:"applied_tiers,omitempty"`
}

// GuestStatement shows a non-member guest's activities for display only:
// guests do not owe money individually, the bringing member is responsible.
// Amounts are the undiscounted cotisations of the attended activities.
type GuestStatement struct {
	PersonID             uint    `json:"person_id"`
	LastName             string  `json:"last_name"`
	FirstName            string  `json:"first_name"`
	ActivityCount        int     `json:"activity_count"`
	AccompanyingMemberID *uint   `json:"accompanying_member_id,omitempty"`
	AmountDue            float64 `json:"amount_due"`
	TotalPaid            float64 `json:"total_paid"`
	Remaining            float64 `json:"remaining"`
}

// ReportTotals are grand totals emitted with each report for consistency
// cross-checks against the per-group rows.
type ReportTotals struct {
	ActivityCount    int     `json:"activity_count"`
	ParticipantCount int     `json:"participant_count"`
	GrossDue         float64 `json:"gross_due"`
	DiscountAmount   float64 `json:"discount_amount"`
	NetDue           float64 `json:"net_due"`
	TotalPaid        float64 `json:"total_paid"`
	Remaining        float64 `json:"remaining"`
}

// PeriodReport is the per-activity and per-region rollup for a date range.
type PeriodReport struct {
	Start         time.Time         `json:"start"`
	End           time.Time         `json:"end"`
	ActivityCount int               `json:"activity_count"`
	Activities    []ActivityBalance `json:"activities"`
	Regions       []RegionStatement `json:"regions"`
	Totals        ReportTotals      `json:"totals"`
	Warnings      []string          `json:"warnings,omitempty"`
}

// MemberReport splits the per-person rollup into members and their
// non-member guests.
type MemberReport struct {
	Start        time.Time         `json:"start"`
	End          time.Time         `json:"end"`
	Members      []MemberStatement `json:"members"`
	Guests       []GuestStatement  `json:"guests"`
	MemberTotals ReportTotals      `json:"member_totals"`
	GuestTotals  ReportTotals      `json:"guest_totals"`
	Warnings     []string          `json:"warnings,omitempty"`
}

// UnitReport is the per-service-unit rollup for a date range. Every unit
// appears, zero-valued when none of its people attended anything in range.
type UnitReport struct {
	Start    time.Time       `json:"start"`
	End      time.Time       `json:"end"`
	Units    []UnitStatement `json:"units"`
	Totals   ReportTotals    `json:"totals"`
	Warnings []string        `json:"warnings,omitempty"`
}

// RegionActivityCount is the light per-region rollup of scheduled activities.
type RegionActivityCount struct {
	Region        string `json:"region"`
	ActivityCount int    `json:"activity_count"`
}

// ActivityParticipation is the light per-activity headcount rollup.
type ActivityParticipation struct {
	ActivityID       uint   `json:"activity_id"`
	Description      string `json:"description"`
	ParticipantCount int    `json:"participant_count"`
}
