package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// filterFlags mirrors port.FilterQuery on the command line. A set flag that
// is not given selects every value; --channel="" selects none.
type filterFlags struct {
	channels   []string
	types      []string
	audiences  []string
	roiMin     float64
	roiMax     float64
	revenueMin float64
	revenueMax float64
	dateFrom   string
	dateTo     string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.channels, "channel", nil, "channels to include (repeatable)")
	fs.StringSliceVar(&f.types, "type", nil, "campaign types to include (repeatable)")
	fs.StringSliceVar(&f.audiences, "audience", nil, "target audiences to include (repeatable)")
	fs.Float64Var(&f.roiMin, "roi-min", 0, "lowest ROI to include")
	fs.Float64Var(&f.roiMax, "roi-max", 0, "highest ROI to include")
	fs.Float64Var(&f.revenueMin, "revenue-min", 0, "lowest revenue to include")
	fs.Float64Var(&f.revenueMax, "revenue-max", 0, "highest revenue to include")
	fs.StringVar(&f.dateFrom, "date-from", "", "earliest start date (YYYY-MM-DD)")
	fs.StringVar(&f.dateTo, "date-to", "", "latest start date (YYYY-MM-DD)")
}

func (f *filterFlags) query(cmd *cobra.Command) (port.FilterQuery, error) {
	var q port.FilterQuery
	changed := cmd.Flags().Changed

	sets := []struct {
		name string
		src  []string
		dst  *[]string
	}{
		{"channel", f.channels, &q.Channels},
		{"type", f.types, &q.Types},
		{"audience", f.audiences, &q.Audiences},
	}
	for _, s := range sets {
		if !changed(s.name) {
			continue
		}
		*s.dst = make([]string, 0, len(s.src))
		for _, v := range s.src {
			if v != "" {
				*s.dst = append(*s.dst, v)
			}
		}
	}

	bounds := []struct {
		name string
		src  float64
		dst  **float64
	}{
		{"roi-min", f.roiMin, &q.ROIMin},
		{"roi-max", f.roiMax, &q.ROIMax},
		{"revenue-min", f.revenueMin, &q.RevenueMin},
		{"revenue-max", f.revenueMax, &q.RevenueMax},
	}
	for _, b := range bounds {
		if changed(b.name) {
			v := b.src
			*b.dst = &v
		}
	}

	for _, d := range []struct {
		name, src string
		dst       **time.Time
	}{
		{"date-from", f.dateFrom, &q.DateFrom},
		{"date-to", f.dateTo, &q.DateTo},
	} {
		if !changed(d.name) {
			continue
		}
		t, err := dataset.ParseDate(d.src)
		if err != nil {
			return q, &domain.InvalidArgumentError{Name: d.name, Reason: "not a date"}
		}
		*d.dst = &t
	}
	return q, nil
}
