package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book/model"
	"library-backend/pkg/cache"
)

// postgresRepository implements book data access with a Redis
// read-through cache on single-book lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new book repository instance
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO books (title, description, isbn, author_id, language_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, description, isbn, author_id, language_id, created_at, updated_at
    `

	var created model.Book
	err = tx.QueryRow(ctx, query,
		b.Title,
		b.Description,
		b.ISBN,
		b.AuthorID,
		b.LanguageID,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.ISBN,
		&created.AuthorID,
		&created.LanguageID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, model.ErrDuplicateISBN
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	if err := replaceGenres(ctx, tx, created.ID, b.GenreIDs); err != nil {
		return nil, err
	}
	created.GenreIDs = b.GenreIDs

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a book by UUID with caching
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var b model.Book
	cached, err := r.cache.Get(ctx, cacheKey, &b)
	if err == nil && cached {
		return &b, nil
	}

	query := `
        SELECT id, title, description, isbn, author_id, language_id, created_at, updated_at
        FROM books
        WHERE id = $1
    `

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.ISBN,
		&b.AuthorID,
		&b.LanguageID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	b.GenreIDs, err = r.loadGenreIDs(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(b); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), cacheTTL)
	}

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error) {
	query := `
        SELECT id, title, description, isbn, author_id, language_id, created_at, updated_at
        FROM books
        ORDER BY title ASC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Description,
			&b.ISBN,
			&b.AuthorID,
			&b.LanguageID,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	for i := range books {
		books[i].GenreIDs, err = r.loadGenreIDs(ctx, books[i].ID)
		if err != nil {
			return nil, 0, err
		}
	}

	total, err := r.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        UPDATE books
        SET title = $1,
            description = $2,
            isbn = $3,
            author_id = $4,
            language_id = $5,
            updated_at = NOW()
        WHERE id = $6
        RETURNING id, title, description, isbn, author_id, language_id, created_at, updated_at
    `

	var updated model.Book
	err = tx.QueryRow(ctx, query,
		b.Title,
		b.Description,
		b.ISBN,
		b.AuthorID,
		b.LanguageID,
		b.ID,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Description,
		&updated.ISBN,
		&updated.AuthorID,
		&updated.LanguageID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	if err := replaceGenres(ctx, tx, updated.ID, b.GenreIDs); err != nil {
		return nil, err
	}
	updated.GenreIDs = b.GenreIDs

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.cache.Delete(ctx, bookCacheKeyPrefix+b.ID.String())

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) loadGenreIDs(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT genre_id FROM book_genres WHERE book_id = $1`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book genres: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan genre id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book genres: %w", err)
	}

	return ids, nil
}

// replaceGenres rewrites the join rows for a book inside the caller's
// transaction.
func replaceGenres(ctx context.Context, tx pgx.Tx, bookID uuid.UUID, genreIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, bookID); err != nil {
		return fmt.Errorf("failed to clear book genres: %w", err)
	}

	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`,
			bookID, genreID,
		); err != nil {
			return fmt.Errorf("failed to link genre %s: %w", genreID, err)
		}
	}

	return nil
}
