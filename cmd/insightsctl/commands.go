package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"campaign-insights/internal/adapter/usecase"
	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

func newDomainsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "Show distinct values and ranges of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, svc *usecase.InsightsUseCase, _ port.FilterQuery, out io.Writer) error {
				d, err := svc.Domains(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "snapshot %s from %s: %d records\n", d.SnapshotID, d.Source, d.Records)
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, col := range []domain.Column{domain.ColumnChannel, domain.ColumnType, domain.ColumnAudience} {
					fmt.Fprintf(tw, "%s\t%s\n", col, strings.Join(d.Categories[col], ", "))
				}
				for _, e := range d.Extents {
					if e.Kind == domain.KindDate {
						fmt.Fprintf(tw, "%s\t%s .. %s\n", e.Column, formatDay(e.From), formatDay(e.To))
						continue
					}
					fmt.Fprintf(tw, "%s\t%s .. %s\n", e.Column, formatFloat(e.Min), formatFloat(e.Max))
				}
				return tw.Flush()
			})
		},
	}
}

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [column...]",
		Short: "Print descriptive statistics of numeric columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := make([]domain.Column, 0, len(args))
			for _, a := range args {
				col, err := domain.ParseColumn(a)
				if err != nil {
					return err
				}
				cols = append(cols, col)
			}
			return opts.run(cmd, func(ctx context.Context, svc *usecase.InsightsUseCase, q port.FilterQuery, out io.Writer) error {
				res, err := svc.Describe(ctx, q, cols)
				if err != nil {
					return err
				}
				printSummary(out, res.Text)
				return writeStats(out, res.Data)
			})
		},
	}
}

func newTopCmd(opts *rootOptions) *cobra.Command {
	var (
		n     int
		value string
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the campaigns with the largest value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			col, err := domain.ParseColumn(value)
			if err != nil {
				return err
			}
			return opts.run(cmd, func(ctx context.Context, svc *usecase.InsightsUseCase, q port.FilterQuery, out io.Writer) error {
				res, err := svc.TopN(ctx, q, n, col)
				if err != nil {
					return err
				}
				printSummary(out, res.Text)
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintf(tw, "campaign\tchannel\ttype\t%s\n", col)
				for _, c := range res.Data {
					v, _ := c.Number(col)
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.Channel, c.Type, formatFloat(v))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 10, "number of campaigns")
	cmd.Flags().StringVar(&value, "value", string(domain.ColumnROI), "numeric column to rank by")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered campaigns as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, svc *usecase.InsightsUseCase, q port.FilterQuery, out io.Writer) error {
				if output == "" || output == "-" {
					return svc.Export(ctx, q, out)
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err = svc.Export(ctx, q, f); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "filtered_data.csv", `destination file, "-" for stdout`)
	return cmd
}

func writeStats(w io.Writer, stats []dataset.NumericSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax\t")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n", s.Column, s.Count,
			formatFloat(s.Mean), formatFloat(s.Std), formatFloat(s.Min),
			formatFloat(s.P25), formatFloat(s.P50), formatFloat(s.P75), formatFloat(s.Max))
	}
	return tw.Flush()
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dataset.DateLayout)
}
