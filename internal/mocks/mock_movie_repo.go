package mocks

import (
	"context"

	"github.com/metinatakli/movie-finder/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetPagingListFunc func(ctx context.Context, criteria domain.MovieSearchCriteria, pageIndex int) (*domain.Page[*domain.Movie], error)
	GetByIdFunc       func(ctx context.Context, id int) (*domain.Movie, error)
}

func (m *MockMovieRepo) GetPagingList(ctx context.Context, criteria domain.MovieSearchCriteria, pageIndex int) (*domain.Page[*domain.Movie], error) {
	return m.GetPagingListFunc(ctx, criteria, pageIndex)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}
