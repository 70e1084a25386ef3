// Package dataset holds the immutable campaign record set and the
// filter and aggregation operations evaluated over it.
package dataset

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"campaign-insights/internal/core/domain"
)

// Options controls how a dataset is read and written.
type Options struct {
	// Aliases maps extra raw header spellings to canonical columns, on top
	// of the built in alias set.
	Aliases map[string]domain.Column
	// Convention is the header spelling used by WriteCSV when the caller
	// does not ask for one explicitly.
	Convention domain.Convention
}

// Extent is the observed minimum and maximum of a numeric or date column.
// Numeric extents of a column with no observations are NaN; date extents
// are zero.
type Extent struct {
	Column domain.Column
	Kind   domain.ColumnKind
	Min    float64
	Max    float64
	From   time.Time
	To     time.Time
}

// Dataset is an immutable snapshot of campaign records. It is safe for
// concurrent use by any number of goroutines.
type Dataset struct {
	id       string
	source   string
	loadedAt time.Time
	opts     Options

	records  []domain.Campaign
	distinct map[domain.Column][]string
	extents  map[domain.Column]Extent
}

var categoricalColumns = []domain.Column{
	domain.ColumnName,
	domain.ColumnChannel,
	domain.ColumnType,
	domain.ColumnAudience,
	domain.ColumnStartMonth,
	domain.ColumnStartQuarter,
}

// New builds a dataset from typed records. The slice is copied.
func New(source string, records []domain.Campaign, opts Options) *Dataset {
	if opts.Convention == "" {
		opts.Convention = domain.ConventionSnake
	}
	d := &Dataset{
		id:       uuid.NewString(),
		source:   source,
		loadedAt: time.Now().UTC(),
		opts:     opts,
		records:  slices.Clone(records),
		distinct: make(map[domain.Column][]string, len(categoricalColumns)),
		extents:  make(map[domain.Column]Extent, len(domain.NumericColumns)+2),
	}

	for _, col := range categoricalColumns {
		seen := make(map[string]struct{})
		values := []string{}
		for i := range d.records {
			v, _ := d.records[i].Text(col)
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		d.distinct[col] = values
	}

	for _, col := range domain.NumericColumns {
		e := Extent{Column: col, Kind: domain.KindNumeric, Min: math.NaN(), Max: math.NaN()}
		for i := range d.records {
			v, _ := d.records[i].Number(col)
			if !finite(v) {
				continue
			}
			if math.IsNaN(e.Min) || v < e.Min {
				e.Min = v
			}
			if math.IsNaN(e.Max) || v > e.Max {
				e.Max = v
			}
		}
		d.extents[col] = e
	}

	for _, col := range []domain.Column{domain.ColumnStartDate, domain.ColumnEndDate} {
		e := Extent{Column: col, Kind: domain.KindDate, Min: math.NaN(), Max: math.NaN()}
		for i := range d.records {
			t, _ := d.records[i].Date(col)
			if t.IsZero() {
				continue
			}
			if e.From.IsZero() || t.Before(e.From) {
				e.From = t
			}
			if e.To.IsZero() || t.After(e.To) {
				e.To = t
			}
		}
		d.extents[col] = e
	}
	return d
}

// ID identifies this snapshot. Every load produces a new ID.
func (d *Dataset) ID() string { return d.id }

// Source describes where the records came from.
func (d *Dataset) Source() string { return d.source }

// LoadedAt is the time the snapshot was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Convention is the header spelling configured for exports.
func (d *Dataset) Convention() domain.Convention { return d.opts.Convention }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// DistinctValues returns the distinct values of a categorical column in
// first-seen order.
func (d *Dataset) DistinctValues(col domain.Column) ([]string, error) {
	values, ok := d.distinct[col]
	if !ok {
		return nil, &domain.ColumnNotFoundError{Column: string(col), Want: domain.KindCategorical}
	}
	return slices.Clone(values), nil
}

// Range returns the observed extent of a numeric or date column.
func (d *Dataset) Range(col domain.Column) (Extent, error) {
	e, ok := d.extents[col]
	if !ok {
		return Extent{}, &domain.ColumnNotFoundError{Column: string(col)}
	}
	return e, nil
}

// DefaultFilter returns the spec that selects every observed value and the
// full observed range of every bounded column.
func (d *Dataset) DefaultFilter() domain.FilterSpec {
	roi := d.extents[domain.ColumnROI]
	rev := d.extents[domain.ColumnRevenue]
	start := d.extents[domain.ColumnStartDate]
	return domain.FilterSpec{
		Channels:  slices.Clone(d.distinct[domain.ColumnChannel]),
		Types:     slices.Clone(d.distinct[domain.ColumnType]),
		Audiences: slices.Clone(d.distinct[domain.ColumnAudience]),
		ROI:       domain.NumRange{Min: roi.Min, Max: roi.Max},
		Revenue:   domain.NumRange{Min: rev.Min, Max: rev.Max},
		StartDate: domain.DateRange{From: start.From, To: start.To},
	}
}

// All returns a view over every record.
func (d *Dataset) All() *View {
	return &View{records: d.records, convention: d.opts.Convention}
}

// ApplyFilter returns the records matching every predicate of spec, in
// dataset order. The dataset is not modified.
func (d *Dataset) ApplyFilter(spec domain.FilterSpec) *View {
	channels := toSet(spec.Channels)
	types := toSet(spec.Types)
	audiences := toSet(spec.Audiences)

	matched := make([]domain.Campaign, 0)
	for i := range d.records {
		c := &d.records[i]
		if _, ok := channels[c.Channel]; !ok {
			continue
		}
		if _, ok := types[c.Type]; !ok {
			continue
		}
		if _, ok := audiences[c.TargetAudience]; !ok {
			continue
		}
		if !spec.ROI.Contains(c.ROI) || !spec.Revenue.Contains(c.Revenue) || !spec.StartDate.Contains(c.StartDate) {
			continue
		}
		matched = append(matched, *c)
	}
	return &View{records: matched, convention: d.opts.Convention}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
