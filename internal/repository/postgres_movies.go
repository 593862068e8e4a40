package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-finder/internal/domain"
)

// movieFilter is shared by the count and page queries so both always see
// the same predicate. $1 title, $2 director, $3 country, $4 category.
const movieFilter = `FROM movie m
		INNER JOIN country co ON co.country_code = m.country_code
		WHERE (m.title ILIKE '%' || $1 || '%' OR $1 = '')
			AND (m.director ILIKE '%' || $2 || '%' OR $2 = '')
			AND (lower(co.country_code) = lower($3) OR lower(co.country_name) = lower($3) OR $3 = '')
			AND ($4 = '' OR EXISTS (
				SELECT 1
				FROM movie_category mc
				INNER JOIN category c ON c.category_id = mc.category_id
				WHERE mc.movie_id = m.movie_id AND lower(c.category_name) = lower($4)))`

type PostgresMovieRepository struct {
	db Pool
}

func NewPostgresMovieRepository(db Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetPagingList(
	ctx context.Context,
	criteria domain.MovieSearchCriteria,
	pageIndex int,
) (*domain.Page[*domain.Movie], error) {
	criteria = criteria.Normalize()

	filterArgs := []any{
		escapeLike(criteria.Title),
		escapeLike(criteria.Director),
		criteria.Country,
		criteria.Category,
	}

	var page *domain.Page[*domain.Movie]

	err := inReadOnlyTx(ctx, p.db, func(tx pgx.Tx) error {
		var totalRecords int

		err := tx.QueryRow(ctx, "SELECT count(*) "+movieFilter, filterArgs...).Scan(&totalRecords)
		if err != nil {
			return dataAccessError("count movies", err)
		}

		movies := make([]*domain.Movie, 0, criteria.PageSize)

		if criteria.HasPage(pageIndex, totalRecords) {
			movies, err = p.queryPage(ctx, tx, criteria, pageIndex, filterArgs)
			if err != nil {
				return err
			}

			if err := loadCategories(ctx, tx, movies); err != nil {
				return err
			}
		}

		page = domain.NewPage(movies, totalRecords, pageIndex, criteria.PageSize)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

func (p *PostgresMovieRepository) queryPage(
	ctx context.Context,
	tx pgx.Tx,
	criteria domain.MovieSearchCriteria,
	pageIndex int,
	filterArgs []any,
) ([]*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s
		%s
		ORDER BY %s
		LIMIT $5 OFFSET $6`, movieColumns, movieFilter, criteria.OrderBy())

	args := append(filterArgs, criteria.Limit(), criteria.Offset(pageIndex))

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, dataAccessError("query movies", err)
	}
	defer rows.Close()

	movies := make([]*domain.Movie, 0, criteria.PageSize)

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, dataAccessError("scan movie", err)
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, dataAccessError("iterate movies", err)
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM movie m
		INNER JOIN country co ON co.country_code = m.country_code
		WHERE m.movie_id = $1`, movieColumns)

	var movie *domain.Movie

	err := inReadOnlyTx(ctx, p.db, func(tx pgx.Tx) error {
		var err error

		movie, err = scanMovie(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return dataAccessError("get movie", err)
		}

		return loadCategories(ctx, tx, []*domain.Movie{movie})
	})
	if err != nil {
		return nil, err
	}

	return movie, nil
}
