package usecase

import (
	"context"
	"io"

	"golang.org/x/text/language"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// filterColumns are the categorical columns the dashboard builds selection
// widgets for.
var filterColumns = []domain.Column{
	domain.ColumnChannel,
	domain.ColumnType,
	domain.ColumnAudience,
	domain.ColumnStartMonth,
	domain.ColumnStartQuarter,
}

var rangeColumns = []domain.Column{
	domain.ColumnBudget,
	domain.ColumnRevenue,
	domain.ColumnNetProfit,
	domain.ColumnROI,
	domain.ColumnConversionRate,
	domain.ColumnStartDate,
	domain.ColumnEndDate,
}

// InsightsUseCase implements port.InsightsUseCase over a DatasetProvider.
// It holds no per-request state; every call filters the current snapshot
// from scratch.
type InsightsUseCase struct {
	data    port.DatasetProvider
	palette []string
	lang    language.Tag
}

// NewInsightsUseCase creates a usecase. palette is passed through to the
// dashboard unchanged and lang selects number formatting in summary text.
func NewInsightsUseCase(data port.DatasetProvider, palette []string, lang language.Tag) *InsightsUseCase {
	return &InsightsUseCase{data: data, palette: palette, lang: lang}
}

// Domains returns distinct values and extents of the current snapshot.
func (u *InsightsUseCase) Domains(ctx context.Context) (*port.Domains, error) {
	d, err := u.data.Get(ctx)
	if err != nil {
		return nil, err
	}
	return u.domains(d)
}

// Reload invalidates the cached snapshot and returns the domains of a fresh
// one.
func (u *InsightsUseCase) Reload(ctx context.Context) (*port.Domains, error) {
	if err := u.data.Invalidate(ctx); err != nil {
		return nil, err
	}
	return u.Domains(ctx)
}

func (u *InsightsUseCase) domains(d *dataset.Dataset) (*port.Domains, error) {
	out := &port.Domains{
		SnapshotID: d.ID(),
		Source:     d.Source(),
		LoadedAt:   d.LoadedAt(),
		Records:    d.Len(),
		Categories: make(map[domain.Column][]string, len(filterColumns)),
		Extents:    make([]dataset.Extent, 0, len(rangeColumns)),
		Palette:    u.palette,
	}
	for _, col := range filterColumns {
		values, err := d.DistinctValues(col)
		if err != nil {
			return nil, err
		}
		out.Categories[col] = values
	}
	for _, col := range rangeColumns {
		e, err := d.Range(col)
		if err != nil {
			return nil, err
		}
		out.Extents = append(out.Extents, e)
	}
	return out, nil
}

// Campaigns returns the records matching q.
func (u *InsightsUseCase) Campaigns(ctx context.Context, q port.FilterQuery, limit int) (*port.Result[[]domain.Campaign], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]domain.Campaign, error) {
		recs := v.Records()
		if limit > 0 && len(recs) > limit {
			recs = recs[:limit]
		}
		return recs, nil
	})
}

// GroupCount counts matching records per category.
func (u *InsightsUseCase) GroupCount(ctx context.Context, q port.FilterQuery, by domain.Column) (*port.Result[[]dataset.CountBucket], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]dataset.CountBucket, error) {
		return v.GroupCount(by)
	})
}

// GroupMean averages value per category over matching records.
func (u *InsightsUseCase) GroupMean(ctx context.Context, q port.FilterQuery, by, value domain.Column) (*port.Result[[]dataset.ValueBucket], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]dataset.ValueBucket, error) {
		return v.GroupMean(by, value)
	})
}

// GroupSum totals value per category over matching records.
func (u *InsightsUseCase) GroupSum(ctx context.Context, q port.FilterQuery, by, value domain.Column) (*port.Result[[]dataset.ValueBucket], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]dataset.ValueBucket, error) {
		return v.GroupSum(by, value)
	})
}

// TopN returns the n matching records with the largest value.
func (u *InsightsUseCase) TopN(ctx context.Context, q port.FilterQuery, n int, value domain.Column) (*port.Result[[]domain.Campaign], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]domain.Campaign, error) {
		return v.TopN(n, value)
	})
}

// Describe computes descriptive statistics over matching records.
func (u *InsightsUseCase) Describe(ctx context.Context, q port.FilterQuery, cols []domain.Column) (*port.Result[[]dataset.NumericSummary], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]dataset.NumericSummary, error) {
		return v.DescribeNumeric(cols...)
	})
}

// CrossTab averages value per (row, col) pair over matching records.
func (u *InsightsUseCase) CrossTab(ctx context.Context, q port.FilterQuery, row, col, value domain.Column) (*port.Result[*dataset.CrossTab], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) (*dataset.CrossTab, error) {
		return v.CrossTabMean(row, col, value)
	})
}

// Histogram bins value over matching records.
func (u *InsightsUseCase) Histogram(ctx context.Context, q port.FilterQuery, value domain.Column, bins int) (*port.Result[[]dataset.HistogramBin], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]dataset.HistogramBin, error) {
		return v.Histogram(value, bins)
	})
}

// BoxPlot computes per-group distribution figures of value.
func (u *InsightsUseCase) BoxPlot(ctx context.Context, q port.FilterQuery, by, value domain.Column) (*port.Result[[]dataset.GroupSummary], error) {
	return evaluate(ctx, u, q, func(v *dataset.View) ([]dataset.GroupSummary, error) {
		return v.GroupDescribe(by, value)
	})
}

// Export writes matching records as CSV using the snapshot's convention.
func (u *InsightsUseCase) Export(ctx context.Context, q port.FilterQuery, w io.Writer) error {
	d, err := u.data.Get(ctx)
	if err != nil {
		return err
	}
	return d.ApplyFilter(Resolve(d, q)).WriteCSV(w, "")
}

func evaluate[T any](ctx context.Context, u *InsightsUseCase, q port.FilterQuery, f func(*dataset.View) (T, error)) (*port.Result[T], error) {
	d, err := u.data.Get(ctx)
	if err != nil {
		return nil, err
	}
	spec := Resolve(d, q)
	v := d.ApplyFilter(spec)
	data, err := f(v)
	if err != nil {
		return nil, err
	}
	summary := v.Summary(spec)
	return &port.Result[T]{
		SnapshotID: d.ID(),
		Summary:    summary,
		Text:       summary.Text(u.lang),
		Data:       data,
	}, nil
}

// Resolve fills the unset parts of q from the snapshot's defaults.
func Resolve(d *dataset.Dataset, q port.FilterQuery) domain.FilterSpec {
	spec := d.DefaultFilter()
	if q.Channels != nil {
		spec.Channels = q.Channels
	}
	if q.Types != nil {
		spec.Types = q.Types
	}
	if q.Audiences != nil {
		spec.Audiences = q.Audiences
	}
	if q.ROIMin != nil {
		spec.ROI.Min = *q.ROIMin
	}
	if q.ROIMax != nil {
		spec.ROI.Max = *q.ROIMax
	}
	if q.RevenueMin != nil {
		spec.Revenue.Min = *q.RevenueMin
	}
	if q.RevenueMax != nil {
		spec.Revenue.Max = *q.RevenueMax
	}
	if q.DateFrom != nil {
		spec.StartDate.From = *q.DateFrom
	}
	if q.DateTo != nil {
		spec.StartDate.To = *q.DateTo
	}
	return spec
}
