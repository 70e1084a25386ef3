package domain

import (
	"slices"
	"time"
)

// NumRange is an inclusive range over a numeric column.
type NumRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether Min <= v <= Max. NaN is never contained.
func (r NumRange) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// DateRange is an inclusive range over calendar dates.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether From <= t <= To. The zero time is never contained.
func (r DateRange) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(r.From) && !t.After(r.To)
}

// FilterSpec describes the active selection. Set predicates are literal: a
// nil or empty set selects nothing.
type FilterSpec struct {
	Channels  []string  `json:"channels"`
	Types     []string  `json:"types"`
	Audiences []string  `json:"audiences"`
	ROI       NumRange  `json:"roi"`
	Revenue   NumRange  `json:"revenue"`
	StartDate DateRange `json:"start_date"`
}

// Match reports whether c satisfies every predicate of the spec.
func (f *FilterSpec) Match(c *Campaign) bool {
	return slices.Contains(f.Channels, c.Channel) &&
		slices.Contains(f.Types, c.Type) &&
		slices.Contains(f.Audiences, c.TargetAudience) &&
		f.ROI.Contains(c.ROI) &&
		f.Revenue.Contains(c.Revenue) &&
		f.StartDate.Contains(c.StartDate)
}

// Clone returns a deep copy so callers can widen or narrow one predicate
// without aliasing the original sets.
func (f FilterSpec) Clone() FilterSpec {
	f.Channels = slices.Clone(f.Channels)
	f.Types = slices.Clone(f.Types)
	f.Audiences = slices.Clone(f.Audiences)
	return f
}
