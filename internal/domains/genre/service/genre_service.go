package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/genre/model"
	"library-backend/internal/domains/genre/repository"
)

// ServiceInterface defines genre business logic
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateGenreRequest) (*model.Genre, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	GetAll(ctx context.Context) ([]model.Genre, error)
}

type genreService struct {
	repo repository.RepositoryInterface
}

func NewGenreService(repo repository.RepositoryInterface) ServiceInterface {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, req *model.CreateGenreRequest) (*model.Genre, error) {
	return s.repo.Create(ctx, &model.Genre{Name: strings.TrimSpace(req.Name)})
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	if id == uuid.Nil {
		return nil, model.ErrGenreNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) GetAll(ctx context.Context) ([]model.Genre, error) {
	return s.repo.GetAll(ctx)
}
