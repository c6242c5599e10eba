package domain

import "time"

// DiscountTier grants a percentage off the cotisation once an activity
// reaches MinParticipants attendees. Thresholds are unique across tiers.
type DiscountTier struct {
	ID              uint
	MinParticipants int
	Percentage      float64
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ResolveTier picks the tier applying to an activity with the given
// headcount: the qualifying tier with the highest threshold, or nil when
// none qualifies. A lone attendee never triggers a group discount, no
// matter what tiers are configured.
func ResolveTier(participantCount int, tiers []DiscountTier) *DiscountTier {
	if participantCount <= 1 {
		return nil
	}

	var best *DiscountTier
	for i := range tiers {
		tier := &tiers[i]
		if tier.MinParticipants > participantCount {
			continue
		}
		if best == nil || tier.MinParticipants > best.MinParticipants {
			best = tier
		}
	}

	return best
}
