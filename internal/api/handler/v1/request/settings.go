package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ConfigureBoundsRequest struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

func (req *ConfigureBoundsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Lower, validation.Min(0.0)),
		validation.Field(&req.Upper, validation.Required, validation.Min(0.0)),
	)
}

type CheckCotisationRequest struct {
	Amount float64 `json:"amount"`
}

func (req *CheckCotisationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required),
	)
}
