package port

import (
	"context"

	"campaign-insights/internal/core/dataset"
)

// DatasetSource loads a fresh campaign snapshot from wherever the records
// live. It is an outbound port; implementations read a local file, an S3
// object, a Postgres table, or wrap another source with a cache.
type DatasetSource interface {
	// Load reads and parses the full record set. Failures are reported as
	// *domain.DataLoadError.
	Load(ctx context.Context) (*dataset.Dataset, error)
	// String describes the source for logs.
	String() string
}

// DatasetProvider hands out the current snapshot, loading it when needed.
// Implementations must be safe for concurrent use.
type DatasetProvider interface {
	// Get returns the current snapshot, reloading it if it expired.
	Get(ctx context.Context) (*dataset.Dataset, error)
	// Invalidate drops the current snapshot so the next Get reloads from
	// the origin, bypassing any cache the source keeps.
	Invalidate(ctx context.Context) error
}

// SourceInvalidator is implemented by sources that hold their own copy of
// the data, such as a shared cache. Invalidate discards that copy.
type SourceInvalidator interface {
	Invalidate(ctx context.Context) error
}
