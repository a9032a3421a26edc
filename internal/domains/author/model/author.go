package model

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a book author. Listings are ordered by surname then
// first name.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	Surname     string     `json:"surname" db:"surname"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death" db:"date_of_death"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// DisplayName renders "Surname, FirstName" for listings.
func (a *Author) DisplayName() string {
	return a.Surname + ", " + a.FirstName
}

type AuthorResponse struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	Surname     string     `json:"surname"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		Surname:     a.Surname,
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
	}
}
