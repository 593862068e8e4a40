package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-finder/internal/app"
	"github.com/metinatakli/movie-finder/internal/cache"
	"github.com/metinatakli/movie-finder/internal/moviefinder"
	"github.com/metinatakli/movie-finder/internal/repository"
	appvalidator "github.com/metinatakli/movie-finder/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App   *app.Application
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	movieRepo := cache.NewMovieRepository(
		repository.NewPostgresMovieRepository(db),
		redisClient,
		cfg.Cache.TTL,
		logger,
	)

	application := app.NewApp(
		cfg,
		logger,
		validator,
		moviefinder.New(movieRepo, cfg.PageSize),
		repository.NewPostgresCountryRepository(db),
		repository.NewPostgresCategoryRepository(db),
	)

	return &TestApp{
		App:   application,
		DB:    db,
		Redis: redisClient,
	}, nil
}
