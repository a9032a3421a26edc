package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is a catalog record, not a loanable copy. One author (nullable:
// removing an author keeps the book), many genres, one language.
type Book struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	ISBN        string     `json:"isbn" db:"isbn"`
	AuthorID    *uuid.UUID `json:"author_id" db:"author_id"`
	LanguageID  *uuid.UUID `json:"language_id" db:"language_id"`
	GenreIDs    []uuid.UUID `json:"genre_ids" db:"-"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// DisplayGenres joins up to three genre names for listings.
func DisplayGenres(names []string) string {
	if len(names) > 3 {
		names = names[:3]
	}
	return strings.Join(names, ", ")
}
