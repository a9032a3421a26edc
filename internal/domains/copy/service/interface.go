package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/copy/model"
)

// ServiceInterface defines copy business logic. Authorization for the
// renewal operations is enforced by the request layer; these methods
// assume the capability check has already passed.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateCopyRequest) (*model.Copy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error)

	// PrepareRenewal is display mode: fetch the copy and suggest a
	// date, mutating nothing.
	PrepareRenewal(ctx context.Context, id uuid.UUID) (*model.RenewalProposal, error)

	// Renew is commit mode: validate the requested date and write the
	// copy's due date. Returns *model.RenewalRejectedError when the
	// date violates a renewal rule.
	Renew(ctx context.Context, id uuid.UUID, requestedDate time.Time) (*model.Copy, error)

	ListLoansForBorrower(ctx context.Context, borrowerID uuid.UUID, page int) ([]model.Copy, int64, error)
	ListAllLoans(ctx context.Context, page int) ([]model.Copy, int64, error)
}
