package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/copy/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new copy repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const copyColumns = `id, book_id, imprint, due_date, status, borrower_id, created_at, updated_at`

func scanCopy(row pgx.Row) (*model.Copy, error) {
	var c model.Copy
	err := row.Scan(
		&c.ID,
		&c.BookID,
		&c.Imprint,
		&c.DueDate,
		&c.Status,
		&c.BorrowerID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a copy. The id is generated here from a random UUID,
// never from a sequence, so identifiers stay unguessable.
func (r *postgresRepository) Create(ctx context.Context, c *model.Copy) (*model.Copy, error) {
	query := `
        INSERT INTO copies (id, book_id, imprint, due_date, status, borrower_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + copyColumns

	created, err := scanCopy(r.pool.QueryRow(ctx, query,
		uuid.New(),
		c.BookID,
		c.Imprint,
		c.DueDate,
		c.Status,
		c.BorrowerID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create copy: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error) {
	query := `SELECT ` + copyColumns + ` FROM copies WHERE id = $1`

	c, err := scanCopy(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCopyNotFound
		}
		return nil, fmt.Errorf("failed to get copy by id: %w", err)
	}

	return c, nil
}

// UpdateDueDate writes the due date and nothing else. Plain single-row
// UPDATE: concurrent renewals of the same copy resolve last-write-wins.
func (r *postgresRepository) UpdateDueDate(ctx context.Context, id uuid.UUID, dueDate time.Time) (*model.Copy, error) {
	query := `
        UPDATE copies
        SET due_date = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + copyColumns

	updated, err := scanCopy(r.pool.QueryRow(ctx, query, dueDate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCopyNotFound
		}
		return nil, fmt.Errorf("failed to update copy due date: %w", err)
	}

	return updated, nil
}

// ListOnLoanByBorrower returns the caller's loans, soonest due first.
func (r *postgresRepository) ListOnLoanByBorrower(ctx context.Context, borrowerID uuid.UUID, filter model.LoanFilter) ([]model.Copy, int64, error) {
	query := `
        SELECT ` + copyColumns + `
        FROM copies
        WHERE borrower_id = $1 AND status = $2
        ORDER BY due_date ASC
        LIMIT $3 OFFSET $4
    `

	rows, err := r.pool.Query(ctx, query, borrowerID, model.StatusOnLoan, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query borrower loans: %w", err)
	}
	defer rows.Close()

	copies, err := collectCopies(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM copies WHERE borrower_id = $1 AND status = $2`,
		borrowerID, model.StatusOnLoan,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count borrower loans: %w", err)
	}

	return copies, total, nil
}

// ListOnLoan returns every copy currently on loan, soonest due first.
func (r *postgresRepository) ListOnLoan(ctx context.Context, filter model.LoanFilter) ([]model.Copy, int64, error) {
	query := `
        SELECT ` + copyColumns + `
        FROM copies
        WHERE status = $1
        ORDER BY due_date ASC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, query, model.StatusOnLoan, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	copies, err := collectCopies(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM copies WHERE status = $1`, model.StatusOnLoan,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	return copies, total, nil
}

// ListOverdue returns on-loan copies whose due date is strictly before
// asOf. Used by the worker's overdue scan.
func (r *postgresRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]model.Copy, error) {
	query := `
        SELECT ` + copyColumns + `
        FROM copies
        WHERE status = $1 AND due_date IS NOT NULL AND due_date < $2
        ORDER BY due_date ASC
    `

	rows, err := r.pool.Query(ctx, query, model.StatusOnLoan, model.CivilDate(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue copies: %w", err)
	}
	defer rows.Close()

	return collectCopies(rows)
}

func (r *postgresRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM copies`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count copies: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status model.CopyStatus) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM copies WHERE status = $1`, status).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count copies by status: %w", err)
	}
	return total, nil
}

func collectCopies(rows pgx.Rows) ([]model.Copy, error) {
	var copies []model.Copy
	for rows.Next() {
		c, err := scanCopy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan copy: %w", err)
		}
		copies = append(copies, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating copies: %w", err)
	}

	return copies, nil
}
