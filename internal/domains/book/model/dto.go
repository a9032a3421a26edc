package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description"`
	ISBN        string      `json:"isbn" binding:"required"`
	AuthorID    *uuid.UUID  `json:"author_id,omitempty"`
	LanguageID  *uuid.UUID  `json:"language_id,omitempty"`
	GenreIDs    []uuid.UUID `json:"genre_ids,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Description,
			validation.Length(0, 1000),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(13, 13).Error("isbn must be exactly 13 characters"),
		),
	)
}

type UpdateBookRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	ISBN        *string     `json:"isbn,omitempty"`
	AuthorID    *uuid.UUID  `json:"author_id,omitempty"`
	LanguageID  *uuid.UUID  `json:"language_id,omitempty"`
	GenreIDs    []uuid.UUID `json:"genre_ids,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
		),
		validation.Field(&r.ISBN,
			validation.When(r.ISBN != nil, validation.Length(13, 13).Error("isbn must be exactly 13 characters")),
		),
	)
}

// BookFilter carries pagination for book listings.
type BookFilter struct {
	Limit  int
	Offset int
}
