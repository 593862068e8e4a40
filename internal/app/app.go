package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/metinatakli/movie-finder/api"
	"github.com/metinatakli/movie-finder/internal/cache"
	"github.com/metinatakli/movie-finder/internal/domain"
	appmiddleware "github.com/metinatakli/movie-finder/internal/middleware"
	"github.com/metinatakli/movie-finder/internal/moviefinder"
	"github.com/metinatakli/movie-finder/internal/repository"
	appvalidator "github.com/metinatakli/movie-finder/internal/validator"
	"github.com/metinatakli/movie-finder/internal/vcs"
	"github.com/metinatakli/movie-finder/migrations"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "movie-finder-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate

	finder       domain.MovieFinder
	countryRepo  domain.CountryRepository
	categoryRepo domain.CategoryRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	finder domain.MovieFinder,
	countryRepo domain.CountryRepository,
	categoryRepo domain.CategoryRepository,
) *Application {
	return &Application{
		config:       cfg,
		logger:       logger,
		validator:    validator,
		finder:       finder,
		countryRepo:  countryRepo,
		categoryRepo: categoryRepo,
	}
}

func Run() error {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &Application{
		config: cfg,
		logger: logger,
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	if cfg.DB.Migrate {
		err = MigrateUp(cfg.DB.DSN, app.logger)
		if err != nil {
			return err
		}
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.DB.Seed {
		err = repository.Seed(context.Background(), db, app.logger)
		if err != nil {
			return err
		}
	}

	var movieRepo domain.MovieRepository = repository.NewPostgresMovieRepository(db)

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		movieRepo = cache.NewMovieRepository(movieRepo, redisClient, cfg.Cache.TTL, app.logger)
	} else {
		app.logger.Info("redis URL not set, movie page cache disabled")
	}

	app.validator = appvalidator.NewValidator()
	app.finder = moviefinder.New(movieRepo, cfg.PageSize)
	app.countryRepo = repository.NewPostgresCountryRepository(db)
	app.categoryRepo = repository.NewPostgresCategoryRepository(db)

	return app.run()
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.DB.MaxOpenConns < 1 || cfg.DB.MaxOpenConns > math.MaxInt32 {
		return nil, fmt.Errorf("db max open conns out of range: %d", cfg.DB.MaxOpenConns)
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// MigrateUp applies the schema migrations embedded in the binary.
func MigrateUp(dsn string, logger *slog.Logger) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("pgx migration driver error: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migration source error: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migrate.New error: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("database schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("applied database migrations")

	return nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFound)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowed)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(appmiddleware.RecoverPanic(app.logger))

	r.Get("/openapi.json", app.GetOpenAPI)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.badRequestResponse,
	})
}
