package domain

import "strings"

// Column is the canonical (lower_snake_case) name of a dataset column.
type Column string

const (
	ColumnName           Column = "campaign_name"
	ColumnChannel        Column = "channel"
	ColumnType           Column = "type"
	ColumnAudience       Column = "target_audience"
	ColumnStartDate      Column = "start_date"
	ColumnEndDate        Column = "end_date"
	ColumnBudget         Column = "budget"
	ColumnRevenue        Column = "revenue"
	ColumnNetProfit      Column = "net_profit"
	ColumnROI            Column = "roi"
	ColumnConversionRate Column = "conversion_rate"

	// Derived from start_date; never read from or written to a file.
	ColumnStartMonth   Column = "start_month"
	ColumnStartQuarter Column = "start_quarter"
)

// ColumnKind classifies how a column's values are typed.
type ColumnKind int

const (
	KindUnknown ColumnKind = iota
	KindCategorical
	KindNumeric
	KindDate
)

func (k ColumnKind) String() string {
	switch k {
	case KindCategorical:
		return "categorical"
	case KindNumeric:
		return "numeric"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// FileColumns lists the stored columns in file order. Every one of them is
// required when loading.
var FileColumns = []Column{
	ColumnName,
	ColumnChannel,
	ColumnType,
	ColumnAudience,
	ColumnStartDate,
	ColumnEndDate,
	ColumnBudget,
	ColumnRevenue,
	ColumnNetProfit,
	ColumnROI,
	ColumnConversionRate,
}

// NumericColumns lists the numeric columns in file order.
var NumericColumns = []Column{
	ColumnBudget,
	ColumnRevenue,
	ColumnNetProfit,
	ColumnROI,
	ColumnConversionRate,
}

// Kind reports the type of the column.
func (c Column) Kind() ColumnKind {
	switch c {
	case ColumnName, ColumnChannel, ColumnType, ColumnAudience, ColumnStartMonth, ColumnStartQuarter:
		return KindCategorical
	case ColumnBudget, ColumnRevenue, ColumnNetProfit, ColumnROI, ColumnConversionRate:
		return KindNumeric
	case ColumnStartDate, ColumnEndDate:
		return KindDate
	default:
		return KindUnknown
	}
}

// titleNames holds the Title Case spelling used by some dataset versions.
var titleNames = map[Column]string{
	ColumnName:           "Campaign Name",
	ColumnChannel:        "Channel",
	ColumnType:           "Type",
	ColumnAudience:       "Target Audience",
	ColumnStartDate:      "Start Date",
	ColumnEndDate:        "End Date",
	ColumnBudget:         "Budget",
	ColumnRevenue:        "Revenue",
	ColumnNetProfit:      "Net Profit",
	ColumnROI:            "ROI",
	ColumnConversionRate: "Conversion Rate",
}

// Convention selects how column headers are spelled on export.
type Convention string

const (
	ConventionSnake Convention = "snake"
	ConventionTitle Convention = "title"
)

// Header returns the column name spelled according to the convention.
func (c Column) Header(conv Convention) string {
	if conv == ConventionTitle {
		if s, ok := titleNames[c]; ok {
			return s
		}
	}
	return string(c)
}

// columnAliases maps normalized header spellings to canonical columns.
// Keys are produced by NormalizeHeader.
var columnAliases = map[string]Column{
	"campaign_name":   ColumnName,
	"campaign":        ColumnName,
	"name":            ColumnName,
	"channel":         ColumnChannel,
	"type":            ColumnType,
	"campaign_type":   ColumnType,
	"target_audience": ColumnAudience,
	"audience":        ColumnAudience,
	"start_date":      ColumnStartDate,
	"end_date":        ColumnEndDate,
	"budget":          ColumnBudget,
	"revenue":         ColumnRevenue,
	"net_profit":      ColumnNetProfit,
	"profit":          ColumnNetProfit,
	"roi":             ColumnROI,
	"conversion_rate": ColumnConversionRate,
	"conversion":      ColumnConversionRate,
}

// NormalizeHeader lowercases a raw header and folds spaces and hyphens to
// underscores so that "Target Audience", "target-audience" and
// "target_audience" compare equal.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	return strings.Join(strings.FieldsFunc(h, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
}

// ResolveColumn maps a raw header to its canonical column using the built in
// alias set and any extra aliases. Extra alias keys are normalized the same
// way as headers.
func ResolveColumn(header string, extra map[string]Column) (Column, bool) {
	key := NormalizeHeader(header)
	for k, c := range extra {
		if NormalizeHeader(k) == key {
			return c, true
		}
	}
	c, ok := columnAliases[key]
	return c, ok
}

// ParseColumn resolves a column name given by a caller, accepting either
// naming convention and the derived columns.
func ParseColumn(s string) (Column, error) {
	key := NormalizeHeader(s)
	switch Column(key) {
	case ColumnStartMonth, ColumnStartQuarter:
		return Column(key), nil
	}
	if c, ok := columnAliases[key]; ok {
		return c, nil
	}
	return "", &ColumnNotFoundError{Column: s}
}
