package dataset

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"campaign-insights/internal/core/domain"
)

// Summary echoes the active selection back with the size of the view.
type Summary struct {
	Records   int
	Filter    domain.FilterSpec
	PeriodMin time.Time
	PeriodMax time.Time
}

// Summary describes the view as selected by spec.
func (v *View) Summary(spec domain.FilterSpec) Summary {
	start, end := v.Period()
	return Summary{
		Records:   v.Len(),
		Filter:    spec.Clone(),
		PeriodMin: start,
		PeriodMax: end,
	}
}

// Text renders the summary as a short sentence for display, formatting
// numbers for the given locale.
func (s Summary) Text(tag language.Tag) string {
	p := message.NewPrinter(tag)
	f := s.Filter

	var b strings.Builder
	b.WriteString(p.Sprintf("%d campaigns", s.Records))
	b.WriteString(p.Sprintf("; channels: %s", listOrNone(f.Channels)))
	b.WriteString(p.Sprintf("; types: %s", listOrNone(f.Types)))
	b.WriteString(p.Sprintf("; audiences: %s", listOrNone(f.Audiences)))
	b.WriteString(p.Sprintf("; ROI %.2f to %.2f", f.ROI.Min, f.ROI.Max))
	b.WriteString(p.Sprintf("; revenue %.2f to %.2f", f.Revenue.Min, f.Revenue.Max))
	b.WriteString(p.Sprintf("; start date %s to %s", formatDate(f.StartDate.From), formatDate(f.StartDate.To)))
	if !s.PeriodMin.IsZero() {
		b.WriteString(p.Sprintf("; period %s to %s", formatDate(s.PeriodMin), formatDate(s.PeriodMax)))
	}
	return b.String()
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
