package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/language/model"
	"library-backend/internal/domains/language/repository"
)

// ServiceInterface defines language business logic
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLanguageRequest) (*model.Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error)
	GetAll(ctx context.Context) ([]model.Language, error)
}

type languageService struct {
	repo repository.RepositoryInterface
}

func NewLanguageService(repo repository.RepositoryInterface) ServiceInterface {
	return &languageService{repo: repo}
}

func (s *languageService) Create(ctx context.Context, req *model.CreateLanguageRequest) (*model.Language, error) {
	return s.repo.Create(ctx, &model.Language{Name: strings.TrimSpace(req.Name)})
}

func (s *languageService) GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error) {
	if id == uuid.Nil {
		return nil, model.ErrLanguageNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *languageService) GetAll(ctx context.Context) ([]model.Language, error) {
	return s.repo.GetAll(ctx)
}
