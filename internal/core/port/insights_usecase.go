package port

import (
	"context"
	"io"
	"time"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
)

// InsightsUseCase defines the operations the dashboard calls into. Every
// operation resolves a FilterQuery against the current snapshot, applies it
// and evaluates one aggregation over the resulting view.
type InsightsUseCase interface {
	// Domains returns the values and extents used to build filter controls.
	Domains(ctx context.Context) (*Domains, error)

	// Campaigns returns the matching records, at most limit of them when
	// limit is positive. The summary always counts every match.
	Campaigns(ctx context.Context, q FilterQuery, limit int) (*Result[[]domain.Campaign], error)

	GroupCount(ctx context.Context, q FilterQuery, by domain.Column) (*Result[[]dataset.CountBucket], error)
	GroupMean(ctx context.Context, q FilterQuery, by, value domain.Column) (*Result[[]dataset.ValueBucket], error)
	GroupSum(ctx context.Context, q FilterQuery, by, value domain.Column) (*Result[[]dataset.ValueBucket], error)
	TopN(ctx context.Context, q FilterQuery, n int, value domain.Column) (*Result[[]domain.Campaign], error)
	Describe(ctx context.Context, q FilterQuery, cols []domain.Column) (*Result[[]dataset.NumericSummary], error)
	CrossTab(ctx context.Context, q FilterQuery, row, col, value domain.Column) (*Result[*dataset.CrossTab], error)
	Histogram(ctx context.Context, q FilterQuery, value domain.Column, bins int) (*Result[[]dataset.HistogramBin], error)
	BoxPlot(ctx context.Context, q FilterQuery, by, value domain.Column) (*Result[[]dataset.GroupSummary], error)

	// Export writes the matching records as CSV.
	Export(ctx context.Context, q FilterQuery, w io.Writer) error

	// Reload drops the cached snapshot and loads a fresh one.
	Reload(ctx context.Context) (*Domains, error)
}

// FilterQuery is a partially specified FilterSpec. A nil set or bound
// means "everything observed"; a non-nil empty set selects nothing.
type FilterQuery struct {
	Channels   []string
	Types      []string
	Audiences  []string
	ROIMin     *float64
	ROIMax     *float64
	RevenueMin *float64
	RevenueMax *float64
	DateFrom   *time.Time
	DateTo     *time.Time
}

// Result wraps an aggregation with the snapshot it was computed on and the
// summary of the view it was computed over.
type Result[T any] struct {
	SnapshotID string
	Summary    dataset.Summary
	Text       string
	Data       T
}

// Domains describes the current snapshot for building filter controls.
type Domains struct {
	SnapshotID string
	Source     string
	LoadedAt   time.Time
	Records    int
	Categories map[domain.Column][]string
	Extents    []dataset.Extent
	Palette    []string
}
