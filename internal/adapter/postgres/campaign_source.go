package postgres

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/lib/pq"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
)

// Querier is the part of pgxpool.Pool the source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CampaignSource implements port.DatasetSource over a Postgres table with
// the columns created by db/migrations. It only reads.
type CampaignSource struct {
	db    Querier
	table string
	opts  dataset.Options
}

// NewCampaignSource returns a source reading table. table may be schema
// qualified ("marketing.campaigns").
func NewCampaignSource(db Querier, table string, opts dataset.Options) *CampaignSource {
	return &CampaignSource{db: db, table: table, opts: opts}
}

// Load reads every row in insertion order.
func (s *CampaignSource) Load(ctx context.Context) (*dataset.Dataset, error) {
	query := fmt.Sprintf(`
        SELECT
            campaign_name,
            channel,
            type,
            target_audience,
            start_date,
            end_date,
            budget,
            revenue,
            net_profit,
            roi,
            conversion_rate
        FROM %s
        ORDER BY id`, quoteTable(s.table))

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.String(), Err: err}
	}

	line := 0
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		line++
		var c domain.Campaign
		var start, end pgtype.Date
		var budget, revenue, profit, roi, convRate pgtype.Float8
		if err := row.Scan(
			&c.Name,
			&c.Channel,
			&c.Type,
			&c.TargetAudience,
			&start,
			&end,
			&budget,
			&revenue,
			&profit,
			&roi,
			&convRate,
		); err != nil {
			return c, err
		}
		c.StartDate = calendarDate(start)
		c.EndDate = calendarDate(end)
		for _, f := range []struct {
			dst *float64
			src pgtype.Float8
			col string
		}{
			{&c.Budget, budget, "budget"},
			{&c.Revenue, revenue, "revenue"},
			{&c.NetProfit, profit, "net_profit"},
			{&c.ROI, roi, "roi"},
			{&c.ConversionRate, convRate, "conversion_rate"},
		} {
			v, err := nullable(f.src)
			if err != nil {
				return c, fmt.Errorf("%s: %w", f.col, err)
			}
			*f.dst = v
		}
		return c, nil
	})
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.String(), Line: line, Err: err}
	}
	return dataset.New(s.String(), records, s.opts), nil
}

func (s *CampaignSource) String() string { return "postgres:" + s.table }

func quoteTable(table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

// nullable maps NULL to NaN. DOUBLE PRECISION admits infinities, which no
// aggregation can use, so they are rejected like they are in a CSV.
func nullable(f pgtype.Float8) (float64, error) {
	if !f.Valid {
		return math.NaN(), nil
	}
	if math.IsInf(f.Float64, 0) || math.IsNaN(f.Float64) {
		return 0, fmt.Errorf("non-finite number %v", f.Float64)
	}
	return f.Float64, nil
}

func calendarDate(t pgtype.Date) (d time.Time) {
	if !t.Valid || t.InfinityModifier != pgtype.Finite {
		return d
	}
	y, m, day := t.Time.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
