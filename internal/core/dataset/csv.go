package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"campaign-insights/internal/core/domain"
)

// DateLayout is the layout dates are written in.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// Load reads a comma separated campaign file from path.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DataLoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Parse(f, path, opts)
}

// Parse reads a comma separated campaign file with a header row. name is
// used in errors and as the dataset source.
func Parse(r io.Reader, name string, opts Options) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.DataLoadError{Source: name, Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, &domain.DataLoadError{Source: name, Err: err}
	}

	index := make(map[domain.Column]int, len(domain.FileColumns))
	for i, h := range header {
		col, ok := domain.ResolveColumn(h, opts.Aliases)
		if !ok {
			continue
		}
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	var missing []string
	for _, col := range domain.FileColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, string(col))
		}
	}
	if len(missing) > 0 {
		return nil, &domain.DataLoadError{
			Source: name,
			Line:   1,
			Err:    fmt.Errorf("missing required columns: %s", strings.Join(missing, ", ")),
		}
	}

	var records []domain.Campaign
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.DataLoadError{Source: name, Err: err}
		}
		line, _ := cr.FieldPos(0)
		c, err := parseRow(row, index)
		if err != nil {
			return nil, &domain.DataLoadError{Source: name, Line: line, Err: err}
		}
		records = append(records, c)
	}
	return New(name, records, opts), nil
}

func parseRow(row []string, index map[domain.Column]int) (domain.Campaign, error) {
	var (
		c   domain.Campaign
		err error
	)
	c.Name = row[index[domain.ColumnName]]
	c.Channel = row[index[domain.ColumnChannel]]
	c.Type = row[index[domain.ColumnType]]
	c.TargetAudience = row[index[domain.ColumnAudience]]

	dates := []struct {
		col domain.Column
		dst *time.Time
	}{
		{domain.ColumnStartDate, &c.StartDate},
		{domain.ColumnEndDate, &c.EndDate},
	}
	for _, d := range dates {
		if *d.dst, err = parseDate(row[index[d.col]]); err != nil {
			return c, fmt.Errorf("%s: %w", d.col, err)
		}
	}

	numbers := []struct {
		col domain.Column
		dst *float64
	}{
		{domain.ColumnBudget, &c.Budget},
		{domain.ColumnRevenue, &c.Revenue},
		{domain.ColumnNetProfit, &c.NetProfit},
		{domain.ColumnROI, &c.ROI},
		{domain.ColumnConversionRate, &c.ConversionRate},
	}
	for _, n := range numbers {
		if *n.dst, err = parseNumber(row[index[n.col]]); err != nil {
			return c, fmt.Errorf("%s: %w", n.col, err)
		}
	}
	return c, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return f, nil
}

// parseDate accepts the layouts seen across dataset versions and truncates
// the result to a UTC calendar date.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseDate parses a calendar date in any accepted input layout.
func ParseDate(s string) (time.Time, error) {
	return parseDate(s)
}

// WriteCSV writes the view with a header row. Headers are spelled per conv,
// or per the dataset's configured convention when conv is empty.
func (v *View) WriteCSV(w io.Writer, conv domain.Convention) error {
	if conv == "" {
		conv = v.convention
	}
	cw := csv.NewWriter(w)
	header := make([]string, len(domain.FileColumns))
	for i, col := range domain.FileColumns {
		header[i] = col.Header(conv)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(domain.FileColumns))
	for i := range v.records {
		c := &v.records[i]
		row[0] = c.Name
		row[1] = c.Channel
		row[2] = c.Type
		row[3] = c.TargetAudience
		row[4] = formatDate(c.StartDate)
		row[5] = formatDate(c.EndDate)
		row[6] = formatNumber(c.Budget)
		row[7] = formatNumber(c.Revenue)
		row[8] = formatNumber(c.NetProfit)
		row[9] = formatNumber(c.ROI)
		row[10] = formatNumber(c.ConversionRate)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
