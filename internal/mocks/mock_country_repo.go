package mocks

import (
	"context"

	"github.com/metinatakli/movie-finder/internal/domain"
)

type MockCountryRepo struct {
	domain.CountryRepository
	GetAllFunc func(ctx context.Context, namePattern string) ([]*domain.Country, error)
}

func (m *MockCountryRepo) GetAll(ctx context.Context, namePattern string) ([]*domain.Country, error) {
	return m.GetAllFunc(ctx, namePattern)
}
