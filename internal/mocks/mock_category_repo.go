package mocks

import (
	"context"

	"github.com/metinatakli/movie-finder/internal/domain"
)

type MockCategoryRepo struct {
	domain.CategoryRepository
	GetAllFunc func(ctx context.Context) ([]*domain.Category, error)
}

func (m *MockCategoryRepo) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return m.GetAllFunc(ctx)
}
