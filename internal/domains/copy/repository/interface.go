package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/copy/model"
)

// RepositoryInterface defines copy data access. UpdateDueDate is the
// only write the renewal workflow performs; it cannot touch status or
// borrower.
type RepositoryInterface interface {
	Create(ctx context.Context, c *model.Copy) (*model.Copy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error)
	UpdateDueDate(ctx context.Context, id uuid.UUID, dueDate time.Time) (*model.Copy, error)
	ListOnLoanByBorrower(ctx context.Context, borrowerID uuid.UUID, filter model.LoanFilter) ([]model.Copy, int64, error)
	ListOnLoan(ctx context.Context, filter model.LoanFilter) ([]model.Copy, int64, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]model.Copy, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.CopyStatus) (int64, error)
}
