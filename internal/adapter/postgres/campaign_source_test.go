package postgres

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
)

var campaignColumns = []string{
	"campaign_name", "channel", "type", "target_audience", "start_date", "end_date",
	"budget", "revenue", "net_profit", "roi", "conversion_rate",
}

func date(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func newPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestCampaignSourceLoad(t *testing.T) {
	pool := newPool(t)

	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	pool.ExpectQuery(regexp.QuoteMeta(`FROM "marketing"."campaigns"`)).
		WillReturnRows(pgxmock.NewRows(campaignColumns).
			AddRow("Webinar Series", "webinar", "event", "B2B", date(start), date(start.AddDate(0, 1, 0)), 500.0, 1500.0, 1000.0, 2.0, 0.15).
			AddRow("Quiet Promo", "promotion", "discount", "B2C", nil, nil, 100.0, nil, nil, nil, 0.01))

	src := NewCampaignSource(pool, "marketing.campaigns", dataset.Options{})
	d, err := src.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, pool.ExpectationsWereMet())

	assert.Equal(t, "postgres:marketing.campaigns", d.Source())
	recs := d.All().Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "Webinar Series", recs[0].Name)
	assert.Equal(t, start, recs[0].StartDate)
	assert.Equal(t, 2.0, recs[0].ROI)
	assert.True(t, recs[1].StartDate.IsZero())
	assert.True(t, math.IsNaN(recs[1].Revenue))
	assert.Equal(t, 0.01, recs[1].ConversionRate)
}

func TestCampaignSourceQueryError(t *testing.T) {
	pool := newPool(t)
	pool.ExpectQuery(regexp.QuoteMeta(`FROM "campaigns"`)).
		WillReturnError(errors.New("relation does not exist"))

	src := NewCampaignSource(pool, "campaigns", dataset.Options{})
	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataLoad)
	assert.Contains(t, err.Error(), "relation does not exist")
}

func TestCampaignSourceScanError(t *testing.T) {
	pool := newPool(t)
	pool.ExpectQuery(regexp.QuoteMeta(`FROM "campaigns"`)).
		WillReturnRows(pgxmock.NewRows(campaignColumns).
			AddRow("Bad", "email", "promo", "B2B", nil, nil, "lots", nil, nil, nil, nil))

	_, err := NewCampaignSource(pool, "campaigns", dataset.Options{}).Load(context.Background())
	var loadErr *domain.DataLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, loadErr.Line)
}

func TestCampaignSourceRejectsInfinity(t *testing.T) {
	pool := newPool(t)
	pool.ExpectQuery(regexp.QuoteMeta(`FROM "campaigns"`)).
		WillReturnRows(pgxmock.NewRows(campaignColumns).
			AddRow("Fine", "email", "promo", "B2B", nil, nil, 10.0, 20.0, 10.0, 1.0, 0.1).
			AddRow("Boundless", "email", "promo", "B2B", nil, nil, 10.0, math.Inf(1), 10.0, 1.0, 0.1))

	_, err := NewCampaignSource(pool, "campaigns", dataset.Options{}).Load(context.Background())
	var loadErr *domain.DataLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 2, loadErr.Line)
	assert.Contains(t, err.Error(), "revenue")
}
