package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-finder/internal/domain"
)

type PostgresCategoryRepository struct {
	db Pool
}

func NewPostgresCategoryRepository(db Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{
		db: db,
	}
}

// GetAll returns every category ordered by name, including the ones no movie
// is tagged with.
func (p *PostgresCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category

	err := inReadOnlyTx(ctx, p.db, func(tx pgx.Tx) error {
		var err error

		categories, err = p.queryCategories(ctx, tx)
		if err != nil {
			return err
		}

		return p.attachMovies(ctx, tx, categories)
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (p *PostgresCategoryRepository) queryCategories(ctx context.Context, tx pgx.Tx) ([]*domain.Category, error) {
	query := `SELECT c.category_id, c.category_name
		FROM category c
		ORDER BY c.category_name, c.category_id`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, dataAccessError("query categories", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}

	for rows.Next() {
		category := domain.Category{Movies: []*domain.Movie{}}

		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, dataAccessError("scan category", err)
		}

		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		return nil, dataAccessError("iterate categories", err)
	}

	return categories, nil
}

func (p *PostgresCategoryRepository) attachMovies(ctx context.Context, tx pgx.Tx, categories []*domain.Category) error {
	if len(categories) == 0 {
		return nil
	}

	byID := make(map[int]*domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	query := fmt.Sprintf(`SELECT mc.category_id, %s
		FROM movie_category mc
		INNER JOIN movie m ON m.movie_id = mc.movie_id
		INNER JOIN country co ON co.country_code = m.country_code
		ORDER BY m.title, m.movie_id`, movieColumns)

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return dataAccessError("query category movies", err)
	}
	defer rows.Close()

	// A movie tagged with several categories is shared between them.
	movies := map[int]*domain.Movie{}
	ordered := []*domain.Movie{}

	for rows.Next() {
		var categoryID int

		movie, err := scanMovie(rows, &categoryID)
		if err != nil {
			return dataAccessError("scan category movie", err)
		}

		if seen, ok := movies[movie.ID]; ok {
			movie = seen
		} else {
			movies[movie.ID] = movie
			ordered = append(ordered, movie)
		}

		if c, ok := byID[categoryID]; ok {
			c.Movies = append(c.Movies, movie)
		}
	}

	if err = rows.Err(); err != nil {
		return dataAccessError("iterate category movies", err)
	}

	rows.Close()

	return loadCategories(ctx, tx, ordered)
}
