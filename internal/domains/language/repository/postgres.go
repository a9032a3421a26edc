package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/language/model"
)

// RepositoryInterface defines language data access
type RepositoryInterface interface {
	Create(ctx context.Context, l *model.Language) (*model.Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error)
	GetAll(ctx context.Context) ([]model.Language, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, l *model.Language) (*model.Language, error) {
	query := `
        INSERT INTO languages (name)
        VALUES ($1)
        RETURNING id, name, created_at, updated_at
    `

	var created model.Language
	err := r.pool.QueryRow(ctx, query, l.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create language: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error) {
	query := `SELECT id, name, created_at, updated_at FROM languages WHERE id = $1`

	var l model.Language
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLanguageNotFound
		}
		return nil, fmt.Errorf("failed to get language by id: %w", err)
	}

	return &l, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Language, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at, updated_at FROM languages ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query languages: %w", err)
	}
	defer rows.Close()

	var languages []model.Language
	for rows.Next() {
		var l model.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating languages: %w", err)
	}

	return languages, nil
}
