// Package moviefinder is the read-only lookup service in front of the movie
// data-access layer. It validates paging input and otherwise forwards calls
// unchanged; it holds no state of its own.
package moviefinder

import (
	"context"

	"github.com/metinatakli/movie-finder/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/metinatakli/movie-finder/internal/moviefinder"

type Finder struct {
	movies   domain.MovieRepository
	pageSize int
}

// New returns a Finder that serves pages of pageSize movies unless the
// criteria ask for another size. A non-positive pageSize falls back to
// domain.DefaultPageSize.
func New(movies domain.MovieRepository, pageSize int) *Finder {
	if pageSize <= 0 || pageSize > domain.MaxPageSize {
		pageSize = domain.DefaultPageSize
	}

	return &Finder{
		movies:   movies,
		pageSize: pageSize,
	}
}

// PageSize is the size used when criteria leave it unset.
func (f *Finder) PageSize() int {
	return f.pageSize
}

// GetPagingList returns page pageIndex (1-based) of the movies matching
// criteria. Pages past the last one are empty rather than an error.
func (f *Finder) GetPagingList(ctx context.Context, criteria domain.MovieSearchCriteria, pageIndex int) (*domain.Page[*domain.Movie], error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "moviefinder.GetPagingList",
		trace.WithAttributes(
			attribute.Int("moviefinder.page.index", pageIndex),
			attribute.String("moviefinder.sort", criteria.Sort),
		),
	)
	defer span.End()

	if pageIndex < 1 {
		return nil, failSpan(span, domain.ErrInvalidPageIndex)
	}

	switch {
	case criteria.PageSize == 0:
		criteria.PageSize = f.pageSize
	case criteria.PageSize < 0 || criteria.PageSize > domain.MaxPageSize:
		return nil, failSpan(span, domain.ErrInvalidPageSize)
	}

	span.SetAttributes(attribute.Int("moviefinder.page.size", criteria.PageSize))

	page, err := f.movies.GetPagingList(ctx, criteria, pageIndex)
	if err != nil {
		return nil, failSpan(span, err)
	}

	span.SetAttributes(
		attribute.Int("moviefinder.page.items", len(page.Items)),
		attribute.Int("moviefinder.total_records", page.Metadata.TotalRecords),
	)

	return page, nil
}

func (f *Finder) GetMovie(ctx context.Context, id int) (*domain.Movie, error) {
	if id < 1 {
		return nil, domain.ErrRecordNotFound
	}

	return f.movies.GetById(ctx, id)
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
