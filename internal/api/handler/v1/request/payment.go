package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RecordMemberPaymentRequest struct {
	ActivityID uint    `json:"activity_id"`
	MemberID   uint    `json:"member_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date" format:"DD/MM/YYYY"`
}

func (req *RecordMemberPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.MemberID, validation.Required),
		validation.Field(&req.Amount, validation.Required),
		validation.Field(&req.Date, validation.Required),
	)
}

type RecordGuestPaymentRequest struct {
	ActivityID uint    `json:"activity_id"`
	PersonID   uint    `json:"person_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date" format:"DD/MM/YYYY"`
}

func (req *RecordGuestPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.PersonID, validation.Required),
		validation.Field(&req.Amount, validation.Required),
		validation.Field(&req.Date, validation.Required),
	)
}

type UpdatePaymentRequest struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date" format:"DD/MM/YYYY"`
}

func (req *UpdatePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required),
		validation.Field(&req.Date, validation.Required),
	)
}
