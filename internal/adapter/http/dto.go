package httpadapter

import (
	"math"
	"time"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// JSON cannot carry NaN, so undefined statistics are encoded as null.
func num(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dataset.DateLayout)
}

type envelope[T any] struct {
	SnapshotID string     `json:"snapshot_id"`
	Summary    summaryDTO `json:"summary"`
	Data       T          `json:"data"`
}

type rangeDTO struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type dateRangeDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type summaryDTO struct {
	Records     int          `json:"records"`
	Channels    []string     `json:"channels"`
	Types       []string     `json:"types"`
	Audiences   []string     `json:"audiences"`
	ROI         rangeDTO     `json:"roi"`
	Revenue     rangeDTO     `json:"revenue"`
	StartDate   dateRangeDTO `json:"start_date"`
	PeriodStart string       `json:"period_start,omitempty"`
	PeriodEnd   string       `json:"period_end,omitempty"`
	Text        string       `json:"text"`
}

func toEnvelope[T, D any](res *port.Result[T], convert func(T) D) envelope[D] {
	s, f := res.Summary, res.Summary.Filter
	return envelope[D]{
		SnapshotID: res.SnapshotID,
		Summary: summaryDTO{
			Records:     s.Records,
			Channels:    f.Channels,
			Types:       f.Types,
			Audiences:   f.Audiences,
			ROI:         rangeDTO{Min: num(f.ROI.Min), Max: num(f.ROI.Max)},
			Revenue:     rangeDTO{Min: num(f.Revenue.Min), Max: num(f.Revenue.Max)},
			StartDate:   dateRangeDTO{From: day(f.StartDate.From), To: day(f.StartDate.To)},
			PeriodStart: day(s.PeriodMin),
			PeriodEnd:   day(s.PeriodMax),
			Text:        res.Text,
		},
		Data: convert(res.Data),
	}
}

type campaignDTO struct {
	Name           string   `json:"campaign_name"`
	Channel        string   `json:"channel"`
	Type           string   `json:"type"`
	TargetAudience string   `json:"target_audience"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Budget         *float64 `json:"budget"`
	Revenue        *float64 `json:"revenue"`
	NetProfit      *float64 `json:"net_profit"`
	ROI            *float64 `json:"roi"`
	ConversionRate *float64 `json:"conversion_rate"`
}

func toCampaigns(recs []domain.Campaign) []campaignDTO {
	out := make([]campaignDTO, len(recs))
	for i, c := range recs {
		out[i] = campaignDTO{
			Name:           c.Name,
			Channel:        c.Channel,
			Type:           c.Type,
			TargetAudience: c.TargetAudience,
			StartDate:      day(c.StartDate),
			EndDate:        day(c.EndDate),
			Budget:         num(c.Budget),
			Revenue:        num(c.Revenue),
			NetProfit:      num(c.NetProfit),
			ROI:            num(c.ROI),
			ConversionRate: num(c.ConversionRate),
		}
	}
	return out
}

type countDTO struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

func toCounts(buckets []dataset.CountBucket) []countDTO {
	out := make([]countDTO, len(buckets))
	for i, b := range buckets {
		out[i] = countDTO{Key: b.Key, Count: b.Count}
	}
	return out
}

type valueDTO struct {
	Key   string   `json:"key"`
	Value *float64 `json:"value"`
}

func toValues(buckets []dataset.ValueBucket) []valueDTO {
	out := make([]valueDTO, len(buckets))
	for i, b := range buckets {
		out[i] = valueDTO{Key: b.Key, Value: num(b.Value)}
	}
	return out
}

type statsDTO struct {
	Column string   `json:"column,omitempty"`
	Key    string   `json:"key,omitempty"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	P25    *float64 `json:"p25"`
	P50    *float64 `json:"p50"`
	P75    *float64 `json:"p75"`
	Max    *float64 `json:"max"`
}

func toStats(s dataset.NumericSummary) statsDTO {
	return statsDTO{
		Column: string(s.Column),
		Count:  s.Count,
		Mean:   num(s.Mean),
		Std:    num(s.Std),
		Min:    num(s.Min),
		P25:    num(s.P25),
		P50:    num(s.P50),
		P75:    num(s.P75),
		Max:    num(s.Max),
	}
}

func toDescribe(summaries []dataset.NumericSummary) []statsDTO {
	out := make([]statsDTO, len(summaries))
	for i, s := range summaries {
		out[i] = toStats(s)
	}
	return out
}

func toBoxPlot(groups []dataset.GroupSummary) []statsDTO {
	out := make([]statsDTO, len(groups))
	for i, g := range groups {
		out[i] = toStats(g.NumericSummary)
		out[i].Key = g.Key
	}
	return out
}

type crossTabDTO struct {
	Rows  []string                       `json:"rows"`
	Cols  []string                       `json:"cols"`
	Cells map[string]map[string]*float64 `json:"cells"`
}

func toCrossTab(t *dataset.CrossTab) crossTabDTO {
	out := crossTabDTO{Rows: t.Rows, Cols: t.Cols, Cells: make(map[string]map[string]*float64, len(t.Values))}
	for r, cols := range t.Values {
		out.Cells[r] = make(map[string]*float64, len(cols))
		for c, v := range cols {
			out.Cells[r][c] = num(v)
		}
	}
	return out
}

type binDTO struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

func toBins(bins []dataset.HistogramBin) []binDTO {
	out := make([]binDTO, len(bins))
	for i, b := range bins {
		out[i] = binDTO{Lower: b.Lower, Upper: b.Upper, Count: b.Count}
	}
	return out
}

type extentDTO struct {
	Column string   `json:"column"`
	Kind   string   `json:"kind"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	From   string   `json:"from,omitempty"`
	To     string   `json:"to,omitempty"`
}

type domainsDTO struct {
	SnapshotID string              `json:"snapshot_id"`
	Source     string              `json:"source"`
	LoadedAt   time.Time           `json:"loaded_at"`
	Records    int                 `json:"records"`
	Categories map[string][]string `json:"categories"`
	Extents    []extentDTO         `json:"extents"`
	Palette    []string            `json:"palette"`
}

func toDomains(d *port.Domains) domainsDTO {
	out := domainsDTO{
		SnapshotID: d.SnapshotID,
		Source:     d.Source,
		LoadedAt:   d.LoadedAt,
		Records:    d.Records,
		Categories: make(map[string][]string, len(d.Categories)),
		Extents:    make([]extentDTO, len(d.Extents)),
		Palette:    d.Palette,
	}
	for col, values := range d.Categories {
		out.Categories[string(col)] = values
	}
	for i, e := range d.Extents {
		x := extentDTO{Column: string(e.Column), Kind: e.Kind.String()}
		if e.Kind == domain.KindDate {
			x.From, x.To = day(e.From), day(e.To)
		} else {
			x.Min, x.Max = num(e.Min), num(e.Max)
		}
		out.Extents[i] = x
	}
	return out
}
