package rediscache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// Source wraps another DatasetSource and shares its snapshots through
// Redis, so several dashboard processes load the underlying data once per
// TTL. Snapshots are stored as their CSV export. Redis failures are logged
// and fall through to the wrapped source.
type Source struct {
	inner  port.DatasetSource
	rdb    redis.Cmdable
	key    string
	ttl    time.Duration
	opts   dataset.Options
	logger *slog.Logger
}

// NewSource returns a caching decorator around inner.
func NewSource(inner port.DatasetSource, rdb redis.Cmdable, key string, ttl time.Duration, opts dataset.Options, logger *slog.Logger) *Source {
	return &Source{inner: inner, rdb: rdb, key: key, ttl: ttl, opts: opts, logger: logger}
}

// Load returns the cached snapshot when present, otherwise loads from the
// wrapped source and stores the result.
func (s *Source) Load(ctx context.Context) (*dataset.Dataset, error) {
	body, err := s.rdb.Get(ctx, s.key).Bytes()
	switch {
	case err == nil:
		d, perr := dataset.Parse(bytes.NewReader(body), s.inner.String(), s.opts)
		if perr == nil {
			s.logger.Debug("dataset cache hit", slog.String("key", s.key))
			return d, nil
		}
		s.logger.Warn("discarding unreadable cached dataset", slog.String("key", s.key), slog.Any("error", perr))
	case errors.Is(err, redis.Nil):
		s.logger.Debug("dataset cache miss", slog.String("key", s.key))
	default:
		s.logger.Warn("dataset cache unavailable", slog.String("key", s.key), slog.Any("error", err))
	}

	d, err := s.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = d.All().WriteCSV(&buf, domain.ConventionSnake); err != nil {
		return nil, fmt.Errorf("encoding dataset for cache: %w", err)
	}
	if err = s.rdb.Set(ctx, s.key, buf.Bytes(), s.ttl).Err(); err != nil {
		s.logger.Warn("dataset cache store failed", slog.String("key", s.key), slog.Any("error", err))
	}
	return d, nil
}

func (s *Source) String() string {
	return fmt.Sprintf("redis(%s, %s)", s.key, s.inner.String())
}

// Invalidate deletes the shared snapshot so the next Load in any process
// reads the wrapped source.
func (s *Source) Invalidate(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("deleting cached dataset %s: %w", s.key, err)
	}
	s.logger.Debug("dataset cache cleared", slog.String("key", s.key))
	if inv, ok := s.inner.(port.SourceInvalidator); ok {
		return inv.Invalidate(ctx)
	}
	return nil
}
