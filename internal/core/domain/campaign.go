package domain

import (
	"math"
	"time"
)

// Campaign is one row of the marketing campaign dataset. Categorical fields
// are kept verbatim: values differing only in case or surrounding spaces are
// distinct categories. Missing numeric cells are NaN and missing dates are
// the zero time.
type Campaign struct {
	Name           string    `json:"campaign_name"`
	Channel        string    `json:"channel"`
	Type           string    `json:"type"`
	TargetAudience string    `json:"target_audience"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Budget         float64   `json:"budget"`
	Revenue        float64   `json:"revenue"`
	NetProfit      float64   `json:"net_profit"`
	ROI            float64   `json:"roi"`
	ConversionRate float64   `json:"conversion_rate"`
}

var quarters = [...]string{"Q1", "Q2", "Q3", "Q4"}

// Text returns the value of a categorical column. ok is false for columns
// that are not categorical.
func (c *Campaign) Text(col Column) (v string, ok bool) {
	switch col {
	case ColumnName:
		return c.Name, true
	case ColumnChannel:
		return c.Channel, true
	case ColumnType:
		return c.Type, true
	case ColumnAudience:
		return c.TargetAudience, true
	case ColumnStartMonth:
		if c.StartDate.IsZero() {
			return "", true
		}
		return c.StartDate.Month().String(), true
	case ColumnStartQuarter:
		if c.StartDate.IsZero() {
			return "", true
		}
		return quarters[(c.StartDate.Month()-1)/3], true
	}
	return "", false
}

// Number returns the value of a numeric column. ok is false for columns
// that are not numeric.
func (c *Campaign) Number(col Column) (v float64, ok bool) {
	switch col {
	case ColumnBudget:
		return c.Budget, true
	case ColumnRevenue:
		return c.Revenue, true
	case ColumnNetProfit:
		return c.NetProfit, true
	case ColumnROI:
		return c.ROI, true
	case ColumnConversionRate:
		return c.ConversionRate, true
	}
	return math.NaN(), false
}

// Date returns the value of a date column.
func (c *Campaign) Date(col Column) (v time.Time, ok bool) {
	switch col {
	case ColumnStartDate:
		return c.StartDate, true
	case ColumnEndDate:
		return c.EndDate, true
	}
	return time.Time{}, false
}
