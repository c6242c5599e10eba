package domain

import (
	"errors"
	"fmt"
)

var ErrNonPositiveAmount = errors.New("amount must be a positive number")

// OutOfBoundsError reports a cotisation outside the configured range.
type OutOfBoundsError struct {
	Amount float64
	Lower  float64
	Upper  float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cotisation %.2f must be between %.2f Ar and %.2f Ar", e.Amount, e.Lower, e.Upper)
}

// ValidateCotisation checks a proposed cotisation against the configured
// bounds. A nil bounds means none are configured and only the sign is checked.
func ValidateCotisation(amount float64, bounds *CotisationBounds) error {
	if amount < 0 {
		return ErrNonPositiveAmount
	}
	if bounds == nil {
		return nil
	}
	if !bounds.Contains(amount) {
		return &OutOfBoundsError{Amount: amount, Lower: bounds.Lower, Upper: bounds.Upper}
	}

	return nil
}

// Quote is the priced cotisation of one activity. The cotisation is a flat
// group fee, so headcount only matters through the discount tier.
type Quote struct {
	GrossDue       float64       `json:"gross_due"`
	Tier           *DiscountTier `json:"tier,omitempty"`
	DiscountAmount float64       `json:"discount_amount"`
	NetDue         float64       `json:"net_due"`
}

// ComputeQuote applies the resolved discount tier to the gross cotisation.
// NetDue cannot go negative since percentages are bounded to [0, 100].
func ComputeQuote(gross float64, participantCount int, tiers []DiscountTier) Quote {
	quote := Quote{
		GrossDue: gross,
		NetDue:   gross,
	}

	tier := ResolveTier(participantCount, tiers)
	if tier == nil {
		return quote
	}

	quote.Tier = tier
	quote.DiscountAmount = gross * tier.Percentage / 100
	quote.NetDue = gross - quote.DiscountAmount

	return quote
}
