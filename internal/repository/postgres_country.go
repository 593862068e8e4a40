package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-finder/internal/domain"
)

type PostgresCountryRepository struct {
	db Pool
}

func NewPostgresCountryRepository(db Pool) *PostgresCountryRepository {
	return &PostgresCountryRepository{
		db: db,
	}
}

// GetAll returns the countries whose name contains namePattern, ordered by
// name, each with the movies filmed there.
func (p *PostgresCountryRepository) GetAll(ctx context.Context, namePattern string) ([]*domain.Country, error) {
	var countries []*domain.Country

	err := inReadOnlyTx(ctx, p.db, func(tx pgx.Tx) error {
		var err error

		countries, err = p.queryCountries(ctx, tx, namePattern)
		if err != nil {
			return err
		}

		return p.attachMovies(ctx, tx, countries)
	})
	if err != nil {
		return nil, err
	}

	return countries, nil
}

func (p *PostgresCountryRepository) queryCountries(ctx context.Context, tx pgx.Tx, namePattern string) ([]*domain.Country, error) {
	query := `SELECT co.country_code, co.country_name
		FROM country co
		WHERE co.country_name ILIKE '%' || $1 || '%'
		ORDER BY co.country_name`

	rows, err := tx.Query(ctx, query, escapeLike(namePattern))
	if err != nil {
		return nil, dataAccessError("query countries", err)
	}
	defer rows.Close()

	countries := []*domain.Country{}

	for rows.Next() {
		country := domain.Country{Movies: []*domain.Movie{}}

		if err := rows.Scan(&country.Code, &country.Name); err != nil {
			return nil, dataAccessError("scan country", err)
		}

		countries = append(countries, &country)
	}

	if err = rows.Err(); err != nil {
		return nil, dataAccessError("iterate countries", err)
	}

	return countries, nil
}

func (p *PostgresCountryRepository) attachMovies(ctx context.Context, tx pgx.Tx, countries []*domain.Country) error {
	if len(countries) == 0 {
		return nil
	}

	byCode := make(map[string]*domain.Country, len(countries))
	codes := make([]string, len(countries))

	for i, c := range countries {
		byCode[c.Code] = c
		codes[i] = c.Code
	}

	query := fmt.Sprintf(`SELECT %s
		FROM movie m
		INNER JOIN country co ON co.country_code = m.country_code
		WHERE m.country_code = ANY($1)
		ORDER BY m.title, m.movie_id`, movieColumns)

	rows, err := tx.Query(ctx, query, codes)
	if err != nil {
		return dataAccessError("query country movies", err)
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return dataAccessError("scan country movie", err)
		}

		if c, ok := byCode[movie.Country.Code]; ok {
			c.Movies = append(c.Movies, movie)
		}
		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return dataAccessError("iterate country movies", err)
	}

	rows.Close()

	return loadCategories(ctx, tx, movies)
}
