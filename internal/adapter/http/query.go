package httpadapter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// parseFilter builds a FilterQuery from query parameters. channel, type and
// audience are repeatable; a parameter present with only empty values
// selects nothing, an absent one selects everything.
func parseFilter(q url.Values) (port.FilterQuery, error) {
	var (
		f   port.FilterQuery
		err error
	)
	f.Channels = parseSet(q, "channel")
	f.Types = parseSet(q, "type")
	f.Audiences = parseSet(q, "audience")

	floats := []struct {
		name string
		dst  **float64
	}{
		{"roi_min", &f.ROIMin},
		{"roi_max", &f.ROIMax},
		{"revenue_min", &f.RevenueMin},
		{"revenue_max", &f.RevenueMax},
	}
	for _, p := range floats {
		if *p.dst, err = parseFloat(q, p.name); err != nil {
			return f, err
		}
	}

	dates := []struct {
		name string
		dst  **time.Time
	}{
		{"date_from", &f.DateFrom},
		{"date_to", &f.DateTo},
	}
	for _, p := range dates {
		if *p.dst, err = parseDate(q, p.name); err != nil {
			return f, err
		}
	}
	return f, nil
}

func parseSet(q url.Values, name string) []string {
	raw, ok := q[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseFloat(q url.Values, name string) (*float64, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &domain.InvalidArgumentError{Name: name, Reason: "not a number"}
	}
	return &v, nil
}

func parseDate(q url.Values, name string) (*time.Time, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	t, err := dataset.ParseDate(s)
	if err != nil {
		return nil, &domain.InvalidArgumentError{Name: name, Reason: "not a date"}
	}
	return &t, nil
}

func parseInt(q url.Values, name string, def int) (int, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &domain.InvalidArgumentError{Name: name, Reason: "not an integer"}
	}
	return v, nil
}

// parseColumn reads a required column parameter.
func parseColumn(q url.Values, name string) (domain.Column, error) {
	s := q.Get(name)
	if s == "" {
		return "", &domain.InvalidArgumentError{Name: name, Reason: "required"}
	}
	return domain.ParseColumn(s)
}

// parseColumns reads a comma separated, optional column list.
func parseColumns(q url.Values, name string) ([]domain.Column, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	var cols []domain.Column
	for _, part := range strings.Split(s, ",") {
		col, err := domain.ParseColumn(part)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
