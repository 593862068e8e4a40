package mocks

import (
	"context"

	"github.com/metinatakli/movie-finder/internal/domain"
)

type MockMovieFinder struct {
	domain.MovieFinder
	GetPagingListFunc func(ctx context.Context, criteria domain.MovieSearchCriteria, pageIndex int) (*domain.Page[*domain.Movie], error)
	GetMovieFunc      func(ctx context.Context, id int) (*domain.Movie, error)
}

func (m *MockMovieFinder) GetPagingList(ctx context.Context, criteria domain.MovieSearchCriteria, pageIndex int) (*domain.Page[*domain.Movie], error) {
	return m.GetPagingListFunc(ctx, criteria, pageIndex)
}

func (m *MockMovieFinder) GetMovie(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetMovieFunc(ctx, id)
}
