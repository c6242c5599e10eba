package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateActivityRequest struct {
	Date        string  `json:"date" format:"DD/MM/YYYY"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	Region      string  `json:"region"`
	Cotisation  float64 `json:"cotisation"`
}

func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Priority, validation.Required, validation.Min(1), validation.Max(10)),
		validation.Field(&req.Region, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Cotisation, validation.Required),
	)
}

type UpdateActivityRequest struct {
	Date        string  `json:"date" format:"DD/MM/YYYY"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	Region      string  `json:"region"`
	Cotisation  float64 `json:"cotisation"`
}

func (req *UpdateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Priority, validation.Required, validation.Min(1), validation.Max(10)),
		validation.Field(&req.Region, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Cotisation, validation.Required),
	)
}
