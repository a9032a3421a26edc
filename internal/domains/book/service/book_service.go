package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
)

// DefaultPageSize matches the author listing page size.
const DefaultPageSize = 2

type bookService struct {
	repo repository.RepositoryInterface
}

// NewBookService creates a new book service instance
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	newBook := &model.Book{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		ISBN:        strings.TrimSpace(req.ISBN),
		AuthorID:    req.AuthorID,
		LanguageID:  req.LanguageID,
		GenreIDs:    req.GenreIDs,
	}

	return s.repo.Create(ctx, newBook)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updated.Description = strings.TrimSpace(*req.Description)
	}
	if req.ISBN != nil {
		updated.ISBN = strings.TrimSpace(*req.ISBN)
	}
	if req.AuthorID != nil {
		updated.AuthorID = req.AuthorID
	}
	if req.LanguageID != nil {
		updated.LanguageID = req.LanguageID
	}
	if req.GenreIDs != nil {
		updated.GenreIDs = req.GenreIDs
	}

	return s.repo.Update(ctx, &updated)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}
