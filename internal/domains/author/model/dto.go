package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateAuthorRequest struct {
	FirstName   string     `json:"first_name" binding:"required"`
	Surname     string     `json:"surname" binding:"required"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Surname,
			validation.Required.Error("surname is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.DateOfDeath,
			validation.By(r.deathAfterBirth),
		),
	)
}

func (r CreateAuthorRequest) deathAfterBirth(value interface{}) error {
	death, _ := value.(*time.Time)
	if death == nil || r.DateOfBirth == nil {
		return nil
	}
	if death.Before(*r.DateOfBirth) {
		return validation.NewError("validation_death_before_birth", "date of death cannot precede date of birth")
	}
	return nil
}

type UpdateAuthorRequest struct {
	FirstName   *string    `json:"first_name,omitempty"`
	Surname     *string    `json:"surname,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.NilOrNotEmpty.Error("first name cannot be empty"),
		),
		validation.Field(&r.Surname,
			validation.NilOrNotEmpty.Error("surname cannot be empty"),
		),
	)
}

// AuthorFilter carries pagination for author listings.
type AuthorFilter struct {
	Limit  int
	Offset int
}
