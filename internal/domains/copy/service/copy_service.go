package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/copy/model"
	"library-backend/internal/domains/copy/repository"
)

// LoanPageSize is the page size for both loan listings.
const LoanPageSize = 10

type copyService struct {
	repo repository.RepositoryInterface

	// today is injectable so renewal-window tests can pin the clock.
	today func() time.Time
}

// NewCopyService creates a new copy service instance
func NewCopyService(repo repository.RepositoryInterface) ServiceInterface {
	return &copyService{
		repo:  repo,
		today: time.Now,
	}
}

func (s *copyService) Create(ctx context.Context, req *model.CreateCopyRequest) (*model.Copy, error) {
	status := model.StatusMaintenance
	if req.Status != "" {
		status = model.CopyStatus(req.Status)
	}

	newCopy := &model.Copy{
		BookID:  &req.BookID,
		Imprint: strings.TrimSpace(req.Imprint),
		Status:  status,
	}

	return s.repo.Create(ctx, newCopy)
}

func (s *copyService) GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error) {
	if id == uuid.Nil {
		return nil, model.ErrCopyNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// PrepareRenewal resolves the copy and proposes today+21d. Read-only.
func (s *copyService) PrepareRenewal(ctx context.Context, id uuid.UUID) (*model.RenewalProposal, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.RenewalProposal{
		Copy:            c,
		ProposedDueDate: model.ProposedRenewalDate(s.today()),
	}, nil
}

// Renew applies a validated due-date change to exactly one copy.
// Lookup precedes validation, so an unknown id is always NotFound.
// Validation strictly precedes the write, so a rejected date never
// leaves a partial mutation. Only due_date changes; status and
// borrower are untouched by renewal.
func (s *copyService) Renew(ctx context.Context, id uuid.UUID, requestedDate time.Time) (*model.Copy, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validated, err := model.ValidateRenewalDate(requestedDate, s.today())
	if err != nil {
		return nil, &model.RenewalRejectedError{
			Copy:          c,
			SubmittedDate: requestedDate,
			Err:           err,
		}
	}

	return s.repo.UpdateDueDate(ctx, c.ID, model.CivilDate(validated))
}

func (s *copyService) ListLoansForBorrower(ctx context.Context, borrowerID uuid.UUID, page int) ([]model.Copy, int64, error) {
	return s.repo.ListOnLoanByBorrower(ctx, borrowerID, loanFilter(page))
}

func (s *copyService) ListAllLoans(ctx context.Context, page int) ([]model.Copy, int64, error) {
	return s.repo.ListOnLoan(ctx, loanFilter(page))
}

func loanFilter(page int) model.LoanFilter {
	if page < 1 {
		page = 1
	}
	return model.LoanFilter{
		Limit:  LoanPageSize,
		Offset: (page - 1) * LoanPageSize,
	}
}
