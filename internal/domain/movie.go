package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID          int
	Title       string
	Director    string
	ReleaseDate time.Time
	Rating      decimal.Decimal
	Country     CountryRef
	Categories  []CategoryRef
}

// CountryRef is the many-to-one side of a movie: the country it was filmed in.
type CountryRef struct {
	Code string
	Name string
}

type CategoryRef struct {
	ID   int
	Name string
}

// CategoryNames returns the names of the movie's categories in their loaded order.
func (m *Movie) CategoryNames() []string {
	names := make([]string, len(m.Categories))
	for i, c := range m.Categories {
		names[i] = c.Name
	}

	return names
}

type MovieRepository interface {
	GetPagingList(ctx context.Context, criteria MovieSearchCriteria, pageIndex int) (*Page[*Movie], error)
	GetById(ctx context.Context, id int) (*Movie, error)
}

// MovieFinder is the read-only lookup surface handlers depend on.
type MovieFinder interface {
	GetPagingList(ctx context.Context, criteria MovieSearchCriteria, pageIndex int) (*Page[*Movie], error)
	GetMovie(ctx context.Context, id int) (*Movie, error)
}
