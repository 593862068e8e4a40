package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/metinatakli/movie-finder/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	movieRowColumns    = []string{"movie_id", "title", "director", "release_date", "rating", "country_code", "country_name"}
	categoryRowColumns = []string{"movie_id", "category_id", "category_name"}

	sassyGirlReleased   = time.Date(2001, 7, 27, 0, 0, 0, 0, time.UTC)
	littleBrideReleased = time.Date(2004, 4, 2, 0, 0, 0, 0, time.UTC)

	korea    = domain.CountryRef{Code: "KR", Name: "Korea"}
	romantic = domain.CategoryRef{ID: 1, Name: "Romantic"}
	comedy   = domain.CategoryRef{ID: 2, Name: "Comedy"}
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mock.MatchExpectationsInOrder(true)

	return mock
}

func sassyGirl() *domain.Movie {
	return &domain.Movie{
		ID:          1,
		Title:       "My Sassy Girl",
		Director:    "Jaeyong Gwak",
		ReleaseDate: sassyGirlReleased,
		Rating:      decimal.RequireFromString("8.0"),
		Country:     korea,
		Categories:  []domain.CategoryRef{comedy, romantic},
	}
}

func littleBride() *domain.Movie {
	return &domain.Movie{
		ID:          2,
		Title:       "My Little Bride",
		Director:    "Hojun Kim",
		ReleaseDate: littleBrideReleased,
		Rating:      decimal.RequireFromString("6.9"),
		Country:     korea,
		Categories:  []domain.CategoryRef{comedy, romantic},
	}
}

func koreanMovieRows() *pgxmock.Rows {
	return pgxmock.NewRows(movieRowColumns).
		AddRow(2, "My Little Bride", "Hojun Kim", littleBrideReleased, "6.9", "KR", "Korea").
		AddRow(1, "My Sassy Girl", "Jaeyong Gwak", sassyGirlReleased, "8.0", "KR", "Korea")
}

func koreanCategoryRows() *pgxmock.Rows {
	return pgxmock.NewRows(categoryRowColumns).
		AddRow(1, 2, "Comedy").
		AddRow(2, 2, "Comedy").
		AddRow(1, 1, "Romantic").
		AddRow(2, 1, "Romantic")
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "sassy", want: "sassy"},
		{in: "100%", want: `100\%`},
		{in: "my_girl", want: `my\_girl`},
		{in: `back\slash`, want: `back\\slash`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: true},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: true},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: false},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: false},
		{name: "no rows", err: pgx.ErrNoRows, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnavailable(tt.err))
		})
	}
}
