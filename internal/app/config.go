package app

import (
	"flag"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable, e.g. MOVIEFINDER_DB_DSN.
const envPrefix = "MOVIEFINDER"

type Config struct {
	Port             int    `envconfig:"PORT" default:"3000" validate:"min=1,max=65535"`
	Env              string `envconfig:"ENV" default:"dev"`
	PageSize         int    `envconfig:"PAGE_SIZE" default:"10" validate:"min=1,max=100"`
	OtelCollectorUrl string `envconfig:"OTEL_COLLECTOR_URL"`
	DB               DBConfig
	Redis            RedisConfig
	Cache            CacheConfig

	DisplayVersion bool `ignored:"true"`
}

type DBConfig struct {
	DSN          string        `envconfig:"DSN"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"min=1,max=2147483647"`
	MaxIdleTime  time.Duration `envconfig:"MAX_IDLE_TIME" default:"15m" validate:"min=0s"`
	Migrate      bool          `envconfig:"MIGRATE"`
	Seed         bool          `envconfig:"SEED"`
}

type RedisConfig struct {
	URL          string        `envconfig:"URL"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"min=0"`
	MaxIdleConns int           `envconfig:"MAX_IDLE_CONNS" default:"10" validate:"min=0"`
	MaxIdleTime  time.Duration `envconfig:"MAX_IDLE_TIME" default:"2m" validate:"min=0s"`
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"TTL" default:"1m" validate:"gt=0s"`
}

// LoadConfig reads defaults from the environment (and a .env file when one
// exists), then lets command-line args override them.
func LoadConfig(args []string) (Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	var cfg Config

	err := envconfig.Process(envPrefix, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config error: %w", err)
	}

	fs := flag.NewFlagSet("movie-finder", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "Environment (dev|staging|prod)")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Default number of movies per page")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", cfg.DB.DSN, "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", cfg.DB.MaxOpenConns, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", cfg.DB.MaxIdleTime, "PostgreSQL max idle time for connections")
	fs.BoolVar(&cfg.DB.Migrate, "db-migrate", cfg.DB.Migrate, "Apply pending schema migrations on startup")
	fs.BoolVar(&cfg.DB.Seed, "db-seed", cfg.DB.Seed, "Load the sample catalogue into an empty database")

	fs.StringVar(&cfg.Redis.URL, "redis-url", cfg.Redis.URL, "Redis URL, leave empty to disable the page cache")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", cfg.Redis.MaxOpenConns, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", cfg.Redis.MaxIdleConns, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", cfg.Redis.MaxIdleTime, "Redis max idle time for connections")

	fs.DurationVar(&cfg.Cache.TTL, "cache-ttl", cfg.Cache.TTL, "Lifetime of cached movie pages")

	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", cfg.OtelCollectorUrl, "OpenTelemetry collector gRPC endpoint")

	fs.BoolVar(&cfg.DisplayVersion, "version", false, "Display version and exit")

	err = fs.Parse(args)
	if err != nil {
		return Config{}, err
	}

	// pgxpool sizes the pool with an int32
	err = validator.New().Struct(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
