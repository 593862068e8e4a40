// Package cache provides a Redis read-through cache in front of the movie
// data-access layer. Cache failures are logged and never fail a lookup.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/metinatakli/movie-finder/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	pageKeyPrefix  = "movies:page:"
	movieKeyPrefix = "movies:id:"

	DefaultTTL = time.Minute

	meterName = "github.com/metinatakli/movie-finder/internal/cache"
)

// MovieRepository decorates a domain.MovieRepository with Redis caching.
type MovieRepository struct {
	next   domain.MovieRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger

	lookups metric.Int64Counter
}

func NewMovieRepository(next domain.MovieRepository, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *MovieRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	lookups, err := otel.Meter(meterName).Int64Counter(
		"moviefinder.cache.lookups",
		metric.WithDescription("Movie cache lookups by result"),
	)
	if err != nil {
		logger.Warn("movie cache metrics disabled", "error", err)
		lookups = noop.Int64Counter{}
	}

	return &MovieRepository{
		next:    next,
		client:  client,
		ttl:     ttl,
		logger:  logger,
		lookups: lookups,
	}
}

func (c *MovieRepository) GetPagingList(ctx context.Context, criteria domain.MovieSearchCriteria, pageIndex int) (*domain.Page[*domain.Movie], error) {
	criteria = criteria.Normalize()
	key := PageKey(criteria, pageIndex)

	var page domain.Page[*domain.Movie]
	if c.load(ctx, key, &page) {
		return &page, nil
	}

	result, err := c.next.GetPagingList(ctx, criteria, pageIndex)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, result)

	return result, nil
}

func (c *MovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	key := movieKeyPrefix + strconv.Itoa(id)

	var movie domain.Movie
	if c.load(ctx, key, &movie) {
		return &movie, nil
	}

	result, err := c.next.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, result)

	return result, nil
}

// PageKey derives the cache key of one page. Filters match
// case-insensitively in the store, so they are lowercased here too.
func PageKey(criteria domain.MovieSearchCriteria, pageIndex int) string {
	values := url.Values{}
	values.Set("title", strings.ToLower(criteria.Title))
	values.Set("director", strings.ToLower(criteria.Director))
	values.Set("country", strings.ToLower(criteria.Country))
	values.Set("category", strings.ToLower(criteria.Category))
	values.Set("sort", criteria.Sort)

	return fmt.Sprintf("%s%d:%d:%s", pageKeyPrefix, criteria.PageSize, pageIndex, values.Encode())
}

func (c *MovieRepository) load(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.record(ctx, "miss")
		return false
	}
	if err != nil {
		c.logger.Warn("movie cache get error", "key", key, "error", err)
		c.record(ctx, "error")
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("movie cache decode error", "key", key, "error", err)
		c.record(ctx, "error")
		return false
	}

	c.logger.Debug("movie cache hit", "key", key)
	c.record(ctx, "hit")

	return true
}

func (c *MovieRepository) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("movie cache encode error", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("movie cache set error", "key", key, "error", err)
	}
}

func (c *MovieRepository) record(ctx context.Context, result string) {
	c.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
