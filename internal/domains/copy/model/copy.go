package model

import (
	"time"

	"github.com/google/uuid"
)

// CopyStatus is the loan state of a single copy.
type CopyStatus string

const (
	StatusMaintenance CopyStatus = "maintenance"
	StatusOnLoan      CopyStatus = "on_loan"
	StatusAvailable   CopyStatus = "available"
	StatusReserved    CopyStatus = "reserved"
)

func (s CopyStatus) IsValid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

func (s CopyStatus) String() string {
	return string(s)
}

// Copy is one physically distinct loanable copy of a Book. Its identifier
// is a random UUID rather than a sequence so copy ids cannot be guessed
// by enumeration. DueDate is only meaningful while the copy is on loan
// or reserved.
type Copy struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	BookID     *uuid.UUID `json:"book_id" db:"book_id"`
	Imprint    string     `json:"imprint" db:"imprint"`
	DueDate    *time.Time `json:"due_date" db:"due_date"`
	Status     CopyStatus `json:"status" db:"status"`
	BorrowerID *uuid.UUID `json:"borrower_id" db:"borrower_id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// IsOverdue reports whether the copy's due date has passed. Computed,
// never stored.
func (c *Copy) IsOverdue(today time.Time) bool {
	if c.DueDate == nil {
		return false
	}
	return CivilDate(*c.DueDate).Before(CivilDate(today))
}
