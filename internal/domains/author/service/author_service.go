package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/repository"
)

// DefaultPageSize is the author listing page size.
const DefaultPageSize = 2

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	newAuthor := &model.Author{
		FirstName:   strings.TrimSpace(req.FirstName),
		Surname:     strings.TrimSpace(req.Surname),
		DateOfBirth: req.DateOfBirth,
		DateOfDeath: req.DateOfDeath,
	}

	return s.repo.Create(ctx, newAuthor)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
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

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.FirstName != nil {
		updated.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.Surname != nil {
		updated.Surname = strings.TrimSpace(*req.Surname)
	}
	if req.DateOfBirth != nil {
		updated.DateOfBirth = req.DateOfBirth
	}
	if req.DateOfDeath != nil {
		updated.DateOfDeath = req.DateOfDeath
	}

	return s.repo.Update(ctx, &updated)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrAuthorNotFound
	}
	return s.repo.Delete(ctx, id)
}
