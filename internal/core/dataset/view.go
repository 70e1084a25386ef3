package dataset

import (
	"cmp"
	"math"
	"slices"
	"time"

	"campaign-insights/internal/core/domain"
)

// View is a derived, read-only subset of a dataset's records.
type View struct {
	records    []domain.Campaign
	convention domain.Convention
}

// CountBucket is one group of a GroupCount result.
type CountBucket struct {
	Key   string
	Count int
}

// ValueBucket is one group of a GroupMean or GroupSum result.
type ValueBucket struct {
	Key   string
	Value float64
}

// GroupSummary is the descriptive statistics of one group.
type GroupSummary struct {
	Key string
	NumericSummary
}

// HistogramBin counts values in [Lower, Upper). The last bin also includes
// its upper bound.
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

// CrossTab holds the mean of a value per (row, col) category pair. Pairs
// with no records have no entry.
type CrossTab struct {
	Rows   []string
	Cols   []string
	Values map[string]map[string]float64
}

// At returns the mean for the cell. ok is false when the cell has no data.
func (t *CrossTab) At(row, col string) (v float64, ok bool) {
	v, ok = t.Values[row][col]
	return v, ok
}

// Len returns the number of records in the view.
func (v *View) Len() int { return len(v.records) }

// Records returns a copy of the records in the view.
func (v *View) Records() []domain.Campaign { return slices.Clone(v.records) }

// GroupCount counts records per category of by. Buckets are ordered by key.
func (v *View) GroupCount(by domain.Column) ([]CountBucket, error) {
	keys, groups, err := v.group(by)
	if err != nil {
		return nil, err
	}
	out := make([]CountBucket, len(keys))
	for i, k := range keys {
		out[i] = CountBucket{Key: k, Count: len(groups[k])}
	}
	return out, nil
}

// GroupMean averages value per category of by. NaN values are skipped; a
// group whose values are all NaN has a NaN mean.
func (v *View) GroupMean(by, value domain.Column) ([]ValueBucket, error) {
	return v.groupReduce(by, value, mean)
}

// GroupSum totals value per category of by. NaN values are skipped.
func (v *View) GroupSum(by, value domain.Column) ([]ValueBucket, error) {
	return v.groupReduce(by, value, sum)
}

// GroupDescribe computes descriptive statistics of value per category of by.
// These are the figures behind a box plot.
func (v *View) GroupDescribe(by, value domain.Column) ([]GroupSummary, error) {
	if err := requireNumeric(value); err != nil {
		return nil, err
	}
	keys, groups, err := v.group(by)
	if err != nil {
		return nil, err
	}
	out := make([]GroupSummary, len(keys))
	for i, k := range keys {
		out[i] = GroupSummary{Key: k, NumericSummary: describe(value, v.values(groups[k], value))}
	}
	return out, nil
}

// TopN returns up to n records ordered by value, largest first. Records with
// equal values keep their view order and NaN values sort last.
func (v *View) TopN(n int, value domain.Column) ([]domain.Campaign, error) {
	if n <= 0 {
		return nil, &domain.InvalidArgumentError{Name: "n", Reason: "must be positive"}
	}
	if value.Kind() != domain.KindNumeric {
		return nil, &domain.InvalidArgumentError{Name: "value", Reason: "column " + string(value) + " is not numeric"}
	}
	sorted := slices.Clone(v.records)
	slices.SortStableFunc(sorted, func(a, b domain.Campaign) int {
		x, _ := a.Number(value)
		y, _ := b.Number(value)
		switch {
		case math.IsNaN(x) && math.IsNaN(y):
			return 0
		case math.IsNaN(x):
			return 1
		case math.IsNaN(y):
			return -1
		}
		return cmp.Compare(y, x)
	})
	return sorted[:min(n, len(sorted))], nil
}

// DescribeNumeric computes descriptive statistics for each column. With no
// columns it describes every numeric column.
func (v *View) DescribeNumeric(cols ...domain.Column) ([]NumericSummary, error) {
	if len(cols) == 0 {
		cols = domain.NumericColumns
	}
	all := make([]int, len(v.records))
	for i := range all {
		all[i] = i
	}
	out := make([]NumericSummary, 0, len(cols))
	for _, col := range cols {
		if err := requireNumeric(col); err != nil {
			return nil, err
		}
		out = append(out, describe(col, v.values(all, col)))
	}
	return out, nil
}

// CrossTabMean averages value for each (row, col) category pair present in
// the view.
func (v *View) CrossTabMean(row, col, value domain.Column) (*CrossTab, error) {
	if err := requireCategorical(row); err != nil {
		return nil, err
	}
	if err := requireCategorical(col); err != nil {
		return nil, err
	}
	if err := requireNumeric(value); err != nil {
		return nil, err
	}

	type cell struct{ r, c string }
	members := make(map[cell][]int)
	rows := make(map[string]struct{})
	cols := make(map[string]struct{})
	for i := range v.records {
		r, _ := v.records[i].Text(row)
		c, _ := v.records[i].Text(col)
		members[cell{r, c}] = append(members[cell{r, c}], i)
		rows[r] = struct{}{}
		cols[c] = struct{}{}
	}

	t := &CrossTab{
		Rows:   sortedKeys(row, rows),
		Cols:   sortedKeys(col, cols),
		Values: make(map[string]map[string]float64, len(rows)),
	}
	for k, idx := range members {
		if t.Values[k.r] == nil {
			t.Values[k.r] = make(map[string]float64)
		}
		t.Values[k.r][k.c] = mean(v.values(idx, value))
	}
	return t, nil
}

// Histogram splits the observed range of value into bins of equal width.
// When every value is equal a single bin is returned.
func (v *View) Histogram(value domain.Column, bins int) ([]HistogramBin, error) {
	if bins <= 0 {
		return nil, &domain.InvalidArgumentError{Name: "bins", Reason: "must be positive"}
	}
	if value.Kind() != domain.KindNumeric {
		return nil, &domain.InvalidArgumentError{Name: "value", Reason: "column " + string(value) + " is not numeric"}
	}
	all := make([]int, len(v.records))
	for i := range all {
		all[i] = i
	}
	xs := v.values(all, value)
	if len(xs) == 0 {
		return []HistogramBin{}, nil
	}
	lo, hi := slices.Min(xs), slices.Max(xs)
	if lo == hi {
		return []HistogramBin{{Lower: lo, Upper: hi, Count: len(xs)}}, nil
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi
	for _, x := range xs {
		i := min(int((x-lo)/width), bins-1)
		out[i].Count++
	}
	return out, nil
}

// Period returns the earliest start date and the latest end date in the
// view. Both are zero for an empty view.
func (v *View) Period() (start, end time.Time) {
	for i := range v.records {
		c := &v.records[i]
		if !c.StartDate.IsZero() && (start.IsZero() || c.StartDate.Before(start)) {
			start = c.StartDate
		}
		if !c.EndDate.IsZero() && (end.IsZero() || c.EndDate.After(end)) {
			end = c.EndDate
		}
	}
	return start, end
}

func (v *View) groupReduce(by, value domain.Column, reduce func([]float64) float64) ([]ValueBucket, error) {
	if err := requireNumeric(value); err != nil {
		return nil, err
	}
	keys, groups, err := v.group(by)
	if err != nil {
		return nil, err
	}
	out := make([]ValueBucket, len(keys))
	for i, k := range keys {
		out[i] = ValueBucket{Key: k, Value: reduce(v.values(groups[k], value))}
	}
	return out, nil
}

// group partitions record indexes by the category of by. Keys come back in
// the column's natural order.
func (v *View) group(by domain.Column) ([]string, map[string][]int, error) {
	if err := requireCategorical(by); err != nil {
		return nil, nil, err
	}
	groups := make(map[string][]int)
	seen := make(map[string]struct{})
	for i := range v.records {
		k, _ := v.records[i].Text(by)
		groups[k] = append(groups[k], i)
		seen[k] = struct{}{}
	}
	return sortedKeys(by, seen), groups, nil
}

// values collects the finite values of col for the given record indexes.
// Records built in memory may carry infinities that a CSV load rejects.
func (v *View) values(idx []int, col domain.Column) []float64 {
	xs := make([]float64, 0, len(idx))
	for _, i := range idx {
		x, _ := v.records[i].Number(col)
		if finite(x) {
			xs = append(xs, x)
		}
	}
	return xs
}

func sortedKeys(col domain.Column, set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	if col == domain.ColumnStartMonth {
		slices.SortFunc(keys, func(a, b string) int {
			return cmp.Compare(monthIndex(a), monthIndex(b))
		})
		return keys
	}
	slices.Sort(keys)
	return keys
}

func monthIndex(name string) int {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m)
		}
	}
	return 13
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func requireCategorical(col domain.Column) error {
	if col.Kind() != domain.KindCategorical {
		return &domain.ColumnNotFoundError{Column: string(col), Want: domain.KindCategorical}
	}
	return nil
}

func requireNumeric(col domain.Column) error {
	if col.Kind() != domain.KindNumeric {
		return &domain.ColumnNotFoundError{Column: string(col), Want: domain.KindNumeric}
	}
	return nil
}
