package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func loadFixture(t *testing.T) *Dataset {
	t.Helper()
	d, err := Load(filepath.Join("testdata", "campaigns.csv"), Options{})
	require.NoError(t, err)
	return d
}

// exampleDataset is the three record scenario used throughout the docs.
func exampleDataset() *Dataset {
	start := date(2023, time.March, 1)
	rec := func(name, channel string, roi, revenue float64) domain.Campaign {
		return domain.Campaign{
			Name: name, Channel: channel, Type: "promo", TargetAudience: "B2B",
			StartDate: start, EndDate: start.AddDate(0, 1, 0),
			ROI: roi, Revenue: revenue,
		}
	}
	return New("example", []domain.Campaign{
		rec("a", "email", 0.4, 100),
		rec("b", "organic", 0.9, 600),
		rec("c", "paid", -0.1, 50),
	}, Options{})
}

func TestLoadFixture(t *testing.T) {
	d := loadFixture(t)

	assert.Equal(t, 5, d.Len())
	assert.NotEmpty(t, d.ID())
	assert.Equal(t, domain.ConventionSnake, d.Convention())

	recs := d.All().Records()
	assert.Equal(t, "Spring Mail", recs[0].Name)
	assert.Equal(t, date(2023, time.January, 10), recs[0].StartDate)
	assert.Equal(t, -900.0, recs[0].NetProfit)
	assert.True(t, math.IsNaN(recs[4].ROI), "empty cell should parse as NaN")
	assert.Equal(t, 0.5, recs[4].ConversionRate)
}

func TestLoadTitleCaseHeaders(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "title_case.csv"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())

	c := d.All().Records()[0]
	assert.Equal(t, "Webinar Week", c.Name)
	assert.Equal(t, "B2B", c.TargetAudience)
	assert.Equal(t, date(2023, time.March, 15), c.StartDate)
	assert.Equal(t, date(2023, time.March, 20), c.EndDate)
	assert.Equal(t, 0.6, c.ROI)
	assert.Equal(t, 0.12, c.ConversionRate)
}

func TestLoadExtraAliases(t *testing.T) {
	body := "name,channel,type,audience,start_date,end_date,Spend,revenue,profit,ROI,conversion\n" +
		"x,email,promo,B2C,2023-01-01,2023-01-02,10,20,10,1,0.5\n"
	d, err := Parse(strings.NewReader(body), "inline", Options{
		Aliases: map[string]domain.Column{"Spend": domain.ColumnBudget},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, d.All().Records()[0].Budget)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	tests := []struct {
		name     string
		path     string
		wantLine int
		contains string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.csv"), contains: "no such file"},
		{name: "empty file", path: write("empty.csv", ""), contains: "empty file"},
		{
			name:     "missing column",
			path:     write("cols.csv", "campaign_name,channel,type\nx,email,promo\n"),
			wantLine: 1,
			contains: "target_audience",
		},
		{
			name: "bad number",
			path: write("num.csv", "campaign_name,channel,type,target_audience,start_date,end_date,budget,revenue,net_profit,roi,conversion_rate\n"+
				"x,email,promo,B2C,2023-01-01,2023-01-02,10,20,10,1,0.5\n"+
				"y,email,promo,B2C,2023-01-01,2023-01-02,ten,20,10,1,0.5\n"),
			wantLine: 3,
			contains: "budget",
		},
		{
			name: "infinite number",
			path: write("inf.csv", "campaign_name,channel,type,target_audience,start_date,end_date,budget,revenue,net_profit,roi,conversion_rate\n"+
				"x,email,promo,B2C,2023-01-01,2023-01-02,10,20,10,1,0.5\n"+
				"y,email,promo,B2C,2023-01-01,2023-01-02,10,inf,10,1,0.5\n"),
			wantLine: 3,
			contains: "revenue",
		},
		{
			name: "bad date",
			path: write("date.csv", "campaign_name,channel,type,target_audience,start_date,end_date,budget,revenue,net_profit,roi,conversion_rate\n"+
				"x,email,promo,B2C,yesterday,2023-01-02,10,20,10,1,0.5\n"),
			wantLine: 2,
			contains: "start_date",
		},
		{
			name:     "ragged row",
			path:     write("ragged.csv", "campaign_name,channel,type,target_audience,start_date,end_date,budget,revenue,net_profit,roi,conversion_rate\nx,email\n"),
			contains: "wrong number of fields",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDataLoad)
			assert.Contains(t, err.Error(), tt.contains)

			var loadErr *domain.DataLoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.path, loadErr.Source)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, loadErr.Line)
			}
		})
	}
}

func TestDistinctValues(t *testing.T) {
	d := loadFixture(t)

	channels, err := d.DistinctValues(domain.ColumnChannel)
	require.NoError(t, err)
	// first-seen order, and case differences are distinct categories
	assert.Equal(t, []string{"email", "organic", "paid", "Email"}, channels)

	quarters, err := d.DistinctValues(domain.ColumnStartQuarter)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4"}, quarters)

	_, err = d.DistinctValues(domain.ColumnROI)
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
	_, err = d.DistinctValues("colour")
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestRange(t *testing.T) {
	d := loadFixture(t)

	roi, err := d.Range(domain.ColumnROI)
	require.NoError(t, err)
	assert.Equal(t, domain.KindNumeric, roi.Kind)
	assert.Equal(t, -0.1, roi.Min)
	assert.Equal(t, 0.9, roi.Max)

	start, err := d.Range(domain.ColumnStartDate)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDate, start.Kind)
	assert.Equal(t, date(2023, time.January, 10), start.From)
	assert.Equal(t, date(2023, time.December, 1), start.To)

	_, err = d.Range(domain.ColumnChannel)
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
	_, err = d.Range("unknown")
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestRangeEmptyDataset(t *testing.T) {
	d := New("empty", nil, Options{})

	e, err := d.Range(domain.ColumnRevenue)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(e.Min))
	assert.True(t, math.IsNaN(e.Max))

	channels, err := d.DistinctValues(domain.ColumnChannel)
	require.NoError(t, err)
	assert.Empty(t, channels)
	assert.Equal(t, 0, d.ApplyFilter(d.DefaultFilter()).Len())
}
