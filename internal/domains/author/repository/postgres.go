package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (first_name, surname, date_of_birth, date_of_death)
        VALUES ($1, $2, $3, $4)
        RETURNING id, first_name, surname, date_of_birth, date_of_death, created_at, updated_at
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query,
		a.FirstName,
		a.Surname,
		a.DateOfBirth,
		a.DateOfDeath,
	).Scan(
		&created.ID,
		&created.FirstName,
		&created.Surname,
		&created.DateOfBirth,
		&created.DateOfDeath,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `
        SELECT id, first_name, surname, date_of_birth, date_of_death, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.FirstName,
		&a.Surname,
		&a.DateOfBirth,
		&a.DateOfDeath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// GetAll returns a page of authors ordered by surname, first name.
func (r *postgresRepository) GetAll(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	query := `
        SELECT id, first_name, surname, date_of_birth, date_of_death, created_at, updated_at
        FROM authors
        ORDER BY surname ASC, first_name ASC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(
			&a.ID,
			&a.FirstName,
			&a.Surname,
			&a.DateOfBirth,
			&a.DateOfDeath,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	total, err := r.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1,
            surname = $2,
            date_of_birth = $3,
            date_of_death = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING id, first_name, surname, date_of_birth, date_of_death, created_at, updated_at
    `

	var updated model.Author
	err := r.pool.QueryRow(ctx, query,
		a.FirstName,
		a.Surname,
		a.DateOfBirth,
		a.DateOfDeath,
		a.ID,
	).Scan(
		&updated.ID,
		&updated.FirstName,
		&updated.Surname,
		&updated.DateOfBirth,
		&updated.DateOfDeath,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

// Delete removes an author. Books referencing the author keep existing:
// the schema sets books.author_id to NULL on delete.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return total, nil
}
