package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateCopyRequest struct {
	BookID  uuid.UUID `json:"book_id" binding:"required"`
	Imprint string    `json:"imprint" binding:"required"`
	Status  string    `json:"status,omitempty"`
}

func (r CreateCopyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Imprint,
			validation.Required.Error("imprint is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Status,
			validation.In(
				string(StatusMaintenance),
				string(StatusOnLoan),
				string(StatusAvailable),
				string(StatusReserved),
			).Error("status must be one of maintenance, on_loan, available, reserved"),
		),
	)
}

// RenewRequest is the commit-mode body of the renewal endpoint.
type RenewRequest struct {
	DueDate string `json:"due_date" binding:"required"`
}

func (r RenewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DueDate,
			validation.Required.Error("due_date is required"),
			validation.Date(RenewalDateLayout).Error("due_date must be formatted YYYY-MM-DD"),
		),
	)
}

// ParsedDate returns the submitted date. Call Validate first.
func (r RenewRequest) ParsedDate() (time.Time, error) {
	return time.Parse(RenewalDateLayout, r.DueDate)
}

// RenewalProposal is the display-mode payload: the copy plus the
// suggested date to pre-fill.
type RenewalProposal struct {
	Copy            *Copy     `json:"copy"`
	ProposedDueDate time.Time `json:"proposed_due_date"`
}

// LoanFilter carries pagination for loan listings.
type LoanFilter struct {
	Limit  int
	Offset int
}
