package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTierRequest struct {
	MinParticipants int     `json:"min_participants"`
	Percentage      float64 `json:"percentage"`
	Description     string  `json:"description"`
}

func (req *CreateTierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MinParticipants, validation.Required, validation.Min(2)),
		validation.Field(&req.Percentage, validation.Required, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.Description, validation.Required, validation.Length(2, 100)),
	)
}

type UpdateTierRequest struct {
	MinParticipants int     `json:"min_participants"`
	Percentage      float64 `json:"percentage"`
	Description     string  `json:"description"`
}

func (req *UpdateTierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MinParticipants, validation.Required, validation.Min(2)),
		validation.Field(&req.Percentage, validation.Required, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.Description, validation.Required, validation.Length(2, 100)),
	)
}

type PreviewDiscountRequest struct {
	Amount           float64 `json:"amount"`
	ParticipantCount int     `json:"participant_count"`
}

func (req *PreviewDiscountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required),
		validation.Field(&req.ParticipantCount, validation.Required, validation.Min(1)),
	)
}
