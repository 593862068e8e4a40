package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-finder/internal/domain"
	"github.com/shopspring/decimal"
)

// movieColumns expects movie aliased as m and country as co.
const movieColumns = `m.movie_id, m.title, m.director, m.release_date, m.rating::text, co.country_code, co.country_name`

// scanMovie scans movieColumns into a Movie. Any extra destinations are
// filled from the columns selected before movieColumns.
func scanMovie(row pgx.Row, extra ...any) (*domain.Movie, error) {
	var (
		movie  domain.Movie
		rating string
	)

	dest := append(extra,
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.ReleaseDate,
		&rating,
		&movie.Country.Code,
		&movie.Country.Name,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	r, err := decimal.NewFromString(rating)
	if err != nil {
		return nil, fmt.Errorf("parse rating %q of movie %d: %w", rating, movie.ID, err)
	}

	movie.Rating = r
	movie.Categories = []domain.CategoryRef{}

	return &movie, nil
}

// loadCategories resolves the many-to-many side of the given movies with a
// single follow-up query over the join table.
func loadCategories(ctx context.Context, tx pgx.Tx, movies []*domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	byID := make(map[int]*domain.Movie, len(movies))
	ids := make([]int, 0, len(movies))

	for _, m := range movies {
		if _, ok := byID[m.ID]; ok {
			continue
		}
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}

	query := `SELECT mc.movie_id, c.category_id, c.category_name
		FROM movie_category mc
		INNER JOIN category c ON c.category_id = mc.category_id
		WHERE mc.movie_id = ANY($1)
		ORDER BY c.category_name, c.category_id`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return dataAccessError("query movie categories", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			movieID  int
			category domain.CategoryRef
		)

		if err := rows.Scan(&movieID, &category.ID, &category.Name); err != nil {
			return dataAccessError("scan movie category", err)
		}

		if m, ok := byID[movieID]; ok {
			m.Categories = append(m.Categories, category)
		}
	}

	if err := rows.Err(); err != nil {
		return dataAccessError("iterate movie categories", err)
	}

	return nil
}
