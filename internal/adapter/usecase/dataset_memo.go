package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/port"
)

// DatasetMemo caches the snapshot produced by a DatasetSource for a fixed
// time to live. It implements port.DatasetProvider. Concurrent callers that
// find the cache empty or expired share a single reload. A TTL of zero keeps
// the snapshot until Invalidate is called.
type DatasetMemo struct {
	src         port.DatasetSource
	ttl         time.Duration
	loadTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger
	group       singleflight.Group

	mu      sync.Mutex
	current *dataset.Dataset
	expires time.Time
	// gen is bumped by Invalidate so a reload started before the
	// invalidation does not repopulate the cache.
	gen uint64
}

// MemoOption configures a DatasetMemo.
type MemoOption func(*DatasetMemo)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoOption {
	return func(m *DatasetMemo) { m.now = now }
}

// WithLoadTimeout bounds a single load from the source. Defaults to
// DefaultLoadTimeout.
func WithLoadTimeout(d time.Duration) MemoOption {
	return func(m *DatasetMemo) { m.loadTimeout = d }
}

// DefaultLoadTimeout bounds a load when no WithLoadTimeout is given.
const DefaultLoadTimeout = 2 * time.Minute

// NewDatasetMemo returns a memo over src.
func NewDatasetMemo(src port.DatasetSource, ttl time.Duration, logger *slog.Logger, opts ...MemoOption) *DatasetMemo {
	m := &DatasetMemo{src: src, ttl: ttl, loadTimeout: DefaultLoadTimeout, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the cached snapshot or loads a new one. A caller whose ctx
// ends stops waiting, but the shared load keeps running for the others.
func (m *DatasetMemo) Get(ctx context.Context) (*dataset.Dataset, error) {
	m.mu.Lock()
	if m.current != nil && (m.ttl <= 0 || m.now().Before(m.expires)) {
		d := m.current
		m.mu.Unlock()
		return d, nil
	}
	gen := m.gen
	m.mu.Unlock()

	ch := m.group.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		// Every waiter shares this load, so it is detached from the
		// cancellation of whichever caller started it.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.loadTimeout)
		defer cancel()
		return m.reload(loadCtx, gen)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*dataset.Dataset), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *DatasetMemo) reload(ctx context.Context, gen uint64) (*dataset.Dataset, error) {
	start := m.now()
	d, err := m.src.Load(ctx)
	if err != nil {
		m.logger.Error("dataset load failed", slog.String("source", m.src.String()), slog.Any("error", err))
		m.mu.Lock()
		if m.gen == gen {
			m.current = nil
		}
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	if m.gen == gen {
		m.current = d
		m.expires = m.now().Add(m.ttl)
	}
	m.mu.Unlock()

	m.logger.Info("dataset loaded",
		slog.String("source", m.src.String()),
		slog.String("snapshot", d.ID()),
		slog.Int("records", d.Len()),
		slog.Duration("took", m.now().Sub(start)),
	)
	return d, nil
}

// Invalidate drops the cached snapshot. When the source keeps a copy of its
// own (port.SourceInvalidator) that copy is dropped too, so the next Get
// reads the origin.
func (m *DatasetMemo) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.gen++
	m.mu.Unlock()
	m.logger.Debug("dataset invalidated", slog.String("source", m.src.String()))

	inv, ok := m.src.(port.SourceInvalidator)
	if !ok {
		return nil
	}
	if err := inv.Invalidate(ctx); err != nil {
		m.logger.Error("source invalidation failed", slog.String("source", m.src.String()), slog.Any("error", err))
		return fmt.Errorf("invalidating %s: %w", m.src.String(), err)
	}
	return nil
}
