// Package wiring assembles the dataset source selected by configuration.
// It is shared by the server and the operator CLI.
package wiring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"campaign-insights/internal/adapter/csvfile"
	"campaign-insights/internal/adapter/postgres"
	"campaign-insights/internal/adapter/rediscache"
	"campaign-insights/internal/adapter/s3store"
	"campaign-insights/internal/config"
	"campaign-insights/internal/config/configs"
	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/port"
	"campaign-insights/internal/db"
)

// Source is a configured dataset source together with the resources it
// holds open.
type Source struct {
	port.DatasetSource
	closers []func() error
}

// Close releases connections opened for the source.
func (s *Source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

// Invalidate forwards to the configured source when it keeps its own copy
// of the data.
func (s *Source) Invalidate(ctx context.Context) error {
	if inv, ok := s.DatasetSource.(port.SourceInvalidator); ok {
		return inv.Invalidate(ctx)
	}
	return nil
}

// NewSource builds the source named by cfg.Dataset.Source, wrapped in the
// Redis cache when it is enabled.
func NewSource(ctx context.Context, cfg config.Config, opts dataset.Options, logger *slog.Logger) (*Source, error) {
	out := &Source{}

	switch cfg.Dataset.Source {
	case configs.SourceFile:
		out.DatasetSource = csvfile.NewSource(cfg.Dataset.Path, opts)

	case configs.SourceS3:
		if cfg.S3.Bucket == "" || cfg.S3.Key == "" {
			return nil, errors.New("s3 source requires S3_BUCKET and S3_KEY")
		}
		client, err := s3store.NewClient(ctx, cfg.S3.Region, cfg.S3.Profile)
		if err != nil {
			return nil, err
		}
		out.DatasetSource = s3store.NewSource(client, cfg.S3.Bucket, cfg.S3.Key, opts)

	case configs.SourcePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				return nil, fmt.Errorf("migrating: %w", err)
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		out.closers = append(out.closers, func() error { pool.Close(); return nil })
		out.DatasetSource = postgres.NewCampaignSource(pool, cfg.Psql.Table, opts)

	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		out.closers = append(out.closers, rdb.Close)
		out.DatasetSource = rediscache.NewSource(out.DatasetSource, rdb, cfg.Redis.Key, cfg.Redis.TTL, opts, logger)
	}
	return out, nil
}
