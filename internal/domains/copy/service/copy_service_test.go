package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/copy/model"
)

// fakeCopyRepository keeps copies in memory and records every due-date
// write so tests can assert exactly what was mutated.
type fakeCopyRepository struct {
	copies map[uuid.UUID]*model.Copy

	dueDateWrites []time.Time
}

func newFakeCopyRepository() *fakeCopyRepository {
	return &fakeCopyRepository{copies: make(map[uuid.UUID]*model.Copy)}
}

func (f *fakeCopyRepository) add(c *model.Copy) {
	f.copies[c.ID] = c
}

func (f *fakeCopyRepository) Create(ctx context.Context, c *model.Copy) (*model.Copy, error) {
	stored := *c
	stored.ID = uuid.New()
	f.copies[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeCopyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error) {
	c, ok := f.copies[id]
	if !ok {
		return nil, model.ErrCopyNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeCopyRepository) UpdateDueDate(ctx context.Context, id uuid.UUID, dueDate time.Time) (*model.Copy, error) {
	c, ok := f.copies[id]
	if !ok {
		return nil, model.ErrCopyNotFound
	}
	f.dueDateWrites = append(f.dueDateWrites, dueDate)
	c.DueDate = &dueDate
	out := *c
	return &out, nil
}

func (f *fakeCopyRepository) ListOnLoanByBorrower(ctx context.Context, borrowerID uuid.UUID, filter model.LoanFilter) ([]model.Copy, int64, error) {
	var out []model.Copy
	for _, c := range f.copies {
		if c.Status == model.StatusOnLoan && c.BorrowerID != nil && *c.BorrowerID == borrowerID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCopyRepository) ListOnLoan(ctx context.Context, filter model.LoanFilter) ([]model.Copy, int64, error) {
	var out []model.Copy
	for _, c := range f.copies {
		if c.Status == model.StatusOnLoan {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCopyRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]model.Copy, error) {
	var out []model.Copy
	for _, c := range f.copies {
		if c.Status == model.StatusOnLoan && c.IsOverdue(asOf) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCopyRepository) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.copies)), nil
}

func (f *fakeCopyRepository) CountByStatus(ctx context.Context, status model.CopyStatus) (int64, error) {
	var n int64
	for _, c := range f.copies {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(model.RenewalDateLayout, value)
	require.NoError(t, err)
	return d
}

// newTestService pins the service clock so window boundaries are exact.
func newTestService(repo *fakeCopyRepository, today string) ServiceInterface {
	fixed, _ := time.Parse(model.RenewalDateLayout, today)
	return &copyService{
		repo:  repo,
		today: func() time.Time { return fixed },
	}
}

func onLoanCopy(t *testing.T, due string) *model.Copy {
	t.Helper()
	borrower := uuid.New()
	dueDate := date(t, due)
	return &model.Copy{
		ID:         uuid.New(),
		Imprint:    "London, Gollancz, 2014",
		Status:     model.StatusOnLoan,
		DueDate:    &dueDate,
		BorrowerID: &borrower,
	}
}

func TestPrepareRenewalProposesThreeWeeks(t *testing.T) {
	repo := newFakeCopyRepository()
	c := onLoanCopy(t, "2024-01-10")
	repo.add(c)

	svc := newTestService(repo, "2024-01-08")

	proposal, err := svc.PrepareRenewal(context.Background(), c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, proposal.Copy.ID)
	assert.Equal(t, date(t, "2024-01-29"), proposal.ProposedDueDate)

	// Display mode never writes.
	assert.Empty(t, repo.dueDateWrites)
	stored, _ := repo.GetByID(context.Background(), c.ID)
	assert.Equal(t, date(t, "2024-01-10"), *stored.DueDate)
}

func TestPrepareRenewalUnknownCopy(t *testing.T) {
	svc := newTestService(newFakeCopyRepository(), "2024-01-08")

	_, err := svc.PrepareRenewal(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrCopyNotFound)
}

func TestRenewValidDateUpdatesOnlyDueDate(t *testing.T) {
	repo := newFakeCopyRepository()
	c := onLoanCopy(t, "2024-01-10")
	repo.add(c)

	svc := newTestService(repo, "2024-01-08")

	updated, err := svc.Renew(context.Background(), c.ID, date(t, "2024-01-29"))
	require.NoError(t, err)

	require.NotNil(t, updated.DueDate)
	assert.Equal(t, date(t, "2024-01-29"), *updated.DueDate)
	assert.Equal(t, model.StatusOnLoan, updated.Status)
	assert.Equal(t, c.BorrowerID, updated.BorrowerID)
	assert.Len(t, repo.dueDateWrites, 1)
}

func TestRenewBoundaryDates(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		wantErr   error
	}{
		{name: "today", submitted: "2024-01-08"},
		{name: "full four weeks", submitted: "2024-02-05"},
		{name: "yesterday", submitted: "2024-01-07", wantErr: model.ErrRenewalInPast},
		{name: "four weeks and a day", submitted: "2024-02-06", wantErr: model.ErrRenewalTooFar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCopyRepository()
			c := onLoanCopy(t, "2024-01-10")
			repo.add(c)

			svc := newTestService(repo, "2024-01-08")
			_, err := svc.Renew(context.Background(), c.ID, date(t, tt.submitted))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.dueDateWrites)
				return
			}
			require.NoError(t, err)
			assert.Len(t, repo.dueDateWrites, 1)
		})
	}
}

func TestRenewRejectionCarriesCopyAndDate(t *testing.T) {
	repo := newFakeCopyRepository()
	c := onLoanCopy(t, "2024-01-10")
	repo.add(c)

	svc := newTestService(repo, "2024-01-08")

	_, err := svc.Renew(context.Background(), c.ID, date(t, "2024-01-05"))
	require.Error(t, err)

	rejected, ok := err.(*model.RenewalRejectedError)
	require.True(t, ok)
	assert.Equal(t, c.ID, rejected.Copy.ID)
	assert.Equal(t, date(t, "2024-01-05"), rejected.SubmittedDate)
	assert.Equal(t, "Invalid date — renewal in the past", rejected.Error())

	// The stored due date is untouched after a rejection.
	stored, _ := repo.GetByID(context.Background(), c.ID)
	assert.Equal(t, date(t, "2024-01-10"), *stored.DueDate)
}

func TestRenewUnknownCopyIsNotFoundNotValidation(t *testing.T) {
	svc := newTestService(newFakeCopyRepository(), "2024-01-08")

	// Even with an obviously bad date, an unknown id reports not-found.
	_, err := svc.Renew(context.Background(), uuid.New(), date(t, "2020-01-01"))
	assert.ErrorIs(t, err, model.ErrCopyNotFound)
}

func TestRenewIsIdempotentForSameDate(t *testing.T) {
	repo := newFakeCopyRepository()
	c := onLoanCopy(t, "2024-01-10")
	repo.add(c)

	svc := newTestService(repo, "2024-01-08")
	target := date(t, "2024-01-29")

	first, err := svc.Renew(context.Background(), c.ID, target)
	require.NoError(t, err)
	second, err := svc.Renew(context.Background(), c.ID, target)
	require.NoError(t, err)

	assert.Equal(t, *first.DueDate, *second.DueDate)
}

func TestCreateDefaultsToMaintenance(t *testing.T) {
	repo := newFakeCopyRepository()
	svc := newTestService(repo, "2024-01-08")

	created, err := svc.Create(context.Background(), &model.CreateCopyRequest{
		BookID:  uuid.New(),
		Imprint: "  First edition  ",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusMaintenance, created.Status)
	assert.Equal(t, "First edition", created.Imprint)
	assert.NotEqual(t, uuid.Nil, created.ID)
}
