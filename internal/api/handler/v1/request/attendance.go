package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RegisterMemberAttendanceRequest struct {
	ActivityID uint `json:"activity_id"`
	MemberID   uint `json:"member_id"`
}

func (req *RegisterMemberAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.MemberID, validation.Required),
	)
}

type RegisterGuestAttendanceRequest struct {
	ActivityID           uint `json:"activity_id"`
	PersonID             uint `json:"person_id"`
	AccompanyingMemberID uint `json:"accompanying_member_id"`
}

func (req *RegisterGuestAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.PersonID, validation.Required),
		validation.Field(&req.AccompanyingMemberID, validation.Required),
	)
}

type RegisterAnonymousGuestsRequest struct {
	ActivityID           uint `json:"activity_id"`
	AccompanyingMemberID uint `json:"accompanying_member_id"`
	Count                int  `json:"count"`
}

func (req *RegisterAnonymousGuestsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.AccompanyingMemberID, validation.Required),
		validation.Field(&req.Count, validation.Required, validation.Min(1), validation.Max(100)),
	)
}
