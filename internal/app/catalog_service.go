package app

import (
	"context"

	"github.com/AadiD123/348-Project/internal/domain"
)

type CatalogRepository interface {
	ListBars(ctx context.Context) ([]domain.Bar, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CatalogService lists the administrative reference data (bars and
// categories).
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListBars(ctx context.Context) ([]domain.Bar, error) {
	return s.repo.ListBars(ctx)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}
