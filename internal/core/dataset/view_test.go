package dataset

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"campaign-insights/internal/core/domain"
)

func TestGroupCount(t *testing.T) {
	v := loadFixture(t).All()

	got, err := v.GroupCount(domain.ColumnChannel)
	require.NoError(t, err)
	assert.Equal(t, []CountBucket{
		{Key: "Email", Count: 1},
		{Key: "email", Count: 2},
		{Key: "organic", Count: 1},
		{Key: "paid", Count: 1},
	}, got)

	total := 0
	for _, b := range got {
		total += b.Count
	}
	assert.Equal(t, v.Len(), total)

	_, err = v.GroupCount(domain.ColumnRevenue)
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestGroupCountByMonthUsesCalendarOrder(t *testing.T) {
	v := loadFixture(t).All()

	got, err := v.GroupCount(domain.ColumnStartMonth)
	require.NoError(t, err)
	keys := make([]string, len(got))
	for i, b := range got {
		keys[i] = b.Key
	}
	assert.Equal(t, []string{"January", "April", "July", "October", "December"}, keys)
}

func TestGroupMeanAndSum(t *testing.T) {
	v := loadFixture(t).All()

	means, err := v.GroupMean(domain.ColumnChannel, domain.ColumnROI)
	require.NoError(t, err)
	require.Len(t, means, 4)
	assert.Equal(t, "Email", means[0].Key)
	assert.True(t, math.IsNaN(means[0].Value), "group with only NaN values has a NaN mean")
	assert.InDelta(t, 0.4, means[1].Value, 1e-9)
	assert.InDelta(t, 0.9, means[2].Value, 1e-9)
	assert.InDelta(t, -0.1, means[3].Value, 1e-9)

	sums, err := v.GroupSum(domain.ColumnAudience, domain.ColumnRevenue)
	require.NoError(t, err)
	assert.Equal(t, []ValueBucket{{Key: "B2B", Value: 100}, {Key: "B2C", Value: 1550}}, sums)

	_, err = v.GroupMean(domain.ColumnChannel, domain.ColumnType)
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestAggregationsOverEmptyView(t *testing.T) {
	d := loadFixture(t)
	spec := d.DefaultFilter()
	spec.Channels = nil
	v := d.ApplyFilter(spec)

	counts, err := v.GroupCount(domain.ColumnChannel)
	require.NoError(t, err)
	assert.Empty(t, counts)

	means, err := v.GroupMean(domain.ColumnChannel, domain.ColumnROI)
	require.NoError(t, err)
	assert.Empty(t, means)

	top, err := v.TopN(10, domain.ColumnNetProfit)
	require.NoError(t, err)
	assert.Empty(t, top)

	desc, err := v.DescribeNumeric(domain.ColumnROI)
	require.NoError(t, err)
	require.Len(t, desc, 1)
	assert.Equal(t, 0, desc[0].Count)
	assert.True(t, math.IsNaN(desc[0].Mean))

	hist, err := v.Histogram(domain.ColumnROI, 30)
	require.NoError(t, err)
	assert.Empty(t, hist)

	ct, err := v.CrossTabMean(domain.ColumnChannel, domain.ColumnAudience, domain.ColumnROI)
	require.NoError(t, err)
	assert.Empty(t, ct.Rows)
}

func TestTopN(t *testing.T) {
	v := loadFixture(t).All()

	top, err := v.TopN(2, domain.ColumnNetProfit)
	require.NoError(t, err)
	assert.Equal(t, []string{"Email Again", "Organic Push"}, names(top))

	// equal roi keeps view order; NaN sorts last
	top, err = v.TopN(10, domain.ColumnROI)
	require.NoError(t, err)
	assert.Equal(t, []string{"Organic Push", "Spring Mail", "Email Again", "Paid Blast", "Email Upper"}, names(top))

	_, err = v.TopN(0, domain.ColumnROI)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = v.TopN(3, domain.ColumnChannel)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTopNIsSortedSubsetOfView(t *testing.T) {
	d := loadFixture(t)
	v := d.ApplyFilter(d.DefaultFilter())

	top, err := v.TopN(10, domain.ColumnNetProfit)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(top), 10)
	assert.Subset(t, v.Records(), top)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].NetProfit, top[i].NetProfit)
	}
}

func TestDescribeNumeric(t *testing.T) {
	v := loadFixture(t).All()

	got, err := v.DescribeNumeric(domain.ColumnBudget, domain.ColumnROI)
	require.NoError(t, err)
	require.Len(t, got, 2)

	budget := got[0]
	assert.Equal(t, domain.ColumnBudget, budget.Column)
	assert.Equal(t, 5, budget.Count)
	assert.InDelta(t, 1320, budget.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(4357000), budget.Std, 1e-6)
	assert.Equal(t, 100.0, budget.Min)
	assert.Equal(t, 200.0, budget.P25)
	assert.Equal(t, 300.0, budget.P50)
	assert.Equal(t, 1000.0, budget.P75)
	assert.Equal(t, 5000.0, budget.Max)

	roi := got[1]
	assert.Equal(t, 4, roi.Count)
	assert.InDelta(t, 0.4, roi.Mean, 1e-9)
	assert.InDelta(t, 0.275, roi.P25, 1e-9)
	assert.InDelta(t, 0.4, roi.P50, 1e-9)
	assert.InDelta(t, 0.525, roi.P75, 1e-9)

	all, err := v.DescribeNumeric()
	require.NoError(t, err)
	assert.Len(t, all, len(domain.NumericColumns))

	_, err = v.DescribeNumeric(domain.ColumnStartDate)
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestCrossTabMean(t *testing.T) {
	v := loadFixture(t).All()

	ct, err := v.CrossTabMean(domain.ColumnChannel, domain.ColumnAudience, domain.ColumnRevenue)
	require.NoError(t, err)
	assert.Equal(t, []string{"Email", "email", "organic", "paid"}, ct.Rows)
	assert.Equal(t, []string{"B2B", "B2C"}, ct.Cols)

	got, ok := ct.At("email", "B2C")
	assert.True(t, ok)
	assert.Equal(t, 900.0, got)

	_, ok = ct.At("organic", "B2B")
	assert.False(t, ok, "missing combination must be absent, not zero")
	_, ok = ct.At("paid", "B2B")
	assert.False(t, ok)

	_, err = v.CrossTabMean(domain.ColumnChannel, domain.ColumnROI, domain.ColumnRevenue)
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestHistogram(t *testing.T) {
	v := loadFixture(t).All()

	bins, err := v.Histogram(domain.ColumnRevenue, 2)
	require.NoError(t, err)
	assert.Equal(t, []HistogramBin{
		{Lower: 50, Upper: 475, Count: 2},
		{Lower: 475, Upper: 900, Count: 2},
	}, bins)

	_, err = v.Histogram(domain.ColumnRevenue, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAggregationsSkipInfiniteValues(t *testing.T) {
	d := New("memory", []domain.Campaign{
		{Name: "a", Channel: "email", Type: "promo", TargetAudience: "B2C", Revenue: 100},
		{Name: "b", Channel: "email", Type: "promo", TargetAudience: "B2C", Revenue: math.Inf(1)},
		{Name: "c", Channel: "email", Type: "promo", TargetAudience: "B2C", Revenue: 300},
		{Name: "d", Channel: "paid", Type: "promo", TargetAudience: "B2C", Revenue: math.Inf(-1)},
	}, Options{})
	v := d.All()

	bins, err := v.Histogram(domain.ColumnRevenue, 30)
	require.NoError(t, err)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 2, total)
	assert.Equal(t, 100.0, bins[0].Lower)
	assert.Equal(t, 300.0, bins[len(bins)-1].Upper)

	means, err := v.GroupMean(domain.ColumnChannel, domain.ColumnRevenue)
	require.NoError(t, err)
	assert.Equal(t, 200.0, means[0].Value)
	assert.True(t, math.IsNaN(means[1].Value))

	e, err := d.Range(domain.ColumnRevenue)
	require.NoError(t, err)
	assert.Equal(t, 100.0, e.Min)
	assert.Equal(t, 300.0, e.Max)
}

func TestGroupDescribe(t *testing.T) {
	v := loadFixture(t).All()

	got, err := v.GroupDescribe(domain.ColumnAudience, domain.ColumnConversionRate)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B2B", got[0].Key)
	assert.Equal(t, 2, got[0].Count)
	assert.InDelta(t, 0.3, got[0].P50, 1e-9)
	assert.Equal(t, "B2C", got[1].Key)
	assert.Equal(t, 0.3, got[1].Max)
}

func TestExportRoundTrip(t *testing.T) {
	d := loadFixture(t)
	spec := d.DefaultFilter()
	spec.Audiences = []string{"B2C"}
	v := d.ApplyFilter(spec)

	for _, conv := range []domain.Convention{domain.ConventionSnake, domain.ConventionTitle} {
		var buf bytes.Buffer
		require.NoError(t, v.WriteCSV(&buf, conv))

		back, err := Parse(&buf, "export", Options{})
		require.NoError(t, err)
		if diff := cmp.Diff(v.Records(), back.All().Records(), cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("round trip (%s) mismatch (-want +got):\n%s", conv, diff)
		}
	}
}

func TestExportKeepsNaNAsEmpty(t *testing.T) {
	d := loadFixture(t)

	var buf bytes.Buffer
	require.NoError(t, d.All().WriteCSV(&buf, domain.ConventionTitle))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Campaign Name,Channel,Type,Target Audience,Start Date,End Date,Budget,Revenue,Net Profit,ROI,Conversion Rate", lines[0])
	assert.Equal(t, "Email Upper,Email,newsletter,B2B,2023-12-01,2023-12-20,100,,,,0.5", lines[5])

	back, err := Parse(&buf, "export", Options{})
	require.NoError(t, err)
	if diff := cmp.Diff(d.All().Records(), back.All().Records(), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary(t *testing.T) {
	d := loadFixture(t)
	spec := d.DefaultFilter()
	spec.Channels = []string{"email"}
	v := d.ApplyFilter(spec)

	s := v.Summary(spec)
	assert.Equal(t, 2, s.Records)
	assert.Equal(t, date(2023, 1, 10), s.PeriodMin)
	assert.Equal(t, date(2023, 11, 15), s.PeriodMax)

	text := s.Text(language.English)
	assert.Contains(t, text, "2 campaigns")
	assert.Contains(t, text, "channels: email;")
	assert.Contains(t, text, "ROI -0.10 to 0.90")
	assert.Contains(t, text, "revenue 50.00 to 900.00")
	assert.Contains(t, text, "period 2023-01-10 to 2023-11-15")

	spec.Channels = nil
	empty := d.ApplyFilter(spec).Summary(spec)
	assert.Contains(t, empty.Text(language.English), "channels: none")
	assert.NotContains(t, empty.Text(language.English), "period")
}

func TestSummaryTextGroupsThousands(t *testing.T) {
	s := Summary{Records: 12345, Filter: domain.FilterSpec{
		Revenue: domain.NumRange{Min: 0, Max: 1500000},
	}}
	text := s.Text(language.English)
	assert.Contains(t, text, "12,345 campaigns")
	assert.Contains(t, text, "1,500,000.00")
}
