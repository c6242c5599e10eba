package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateUnitRequest struct {
	Description string `json:"description"`
	Region      string `json:"region"`
}

func (req *CreateUnitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Description, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Region, validation.Required, validation.Length(2, 50)),
	)
}

type UpdateUnitRequest struct {
	Description string `json:"description"`
	Region      string `json:"region"`
}

func (req *UpdateUnitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Description, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Region, validation.Required, validation.Length(2, 50)),
	)
}

type CreatePersonRequest struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	BirthDate string `json:"birth_date" format:"DD/MM/YYYY"`
	UnitID    *uint  `json:"unit_id"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (req *CreatePersonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Address, validation.Length(0, 200)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
	)
}

type UpdatePersonRequest struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	BirthDate string `json:"birth_date" format:"DD/MM/YYYY"`
	UnitID    *uint  `json:"unit_id"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (req *UpdatePersonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Address, validation.Length(0, 200)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
	)
}

type EnrollMemberRequest struct {
	PersonID uint `json:"person_id"`
}

func (req *EnrollMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PersonID, validation.Required),
	)
}
