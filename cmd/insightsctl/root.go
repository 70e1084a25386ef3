package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"campaign-insights/internal/adapter/csvfile"
	"campaign-insights/internal/adapter/usecase"
	"campaign-insights/internal/config"
	"campaign-insights/internal/core/port"
	"campaign-insights/internal/wiring"
)

type rootOptions struct {
	csvPath    string
	convention string
	filter     filterFlags
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "insightsctl",
		Short:         "Filter and aggregate marketing campaign data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.csvPath, "csv", "", "read this CSV file instead of the configured source")
	pf.StringVar(&opts.convention, "convention", "", "header convention of exported CSV (snake or title)")
	opts.filter.register(pf)

	cmd.AddCommand(
		newDomainsCmd(opts),
		newDescribeCmd(opts),
		newTopCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

// session is an opened use case plus the resources backing it.
type session struct {
	svc    *usecase.InsightsUseCase
	logger *slog.Logger
	close  func() error
}

// finish releases the session, logging rather than returning a close error
// so it never masks the command's own result.
func (s *session) finish() {
	if err := s.close(); err != nil {
		s.logger.Warn("closing dataset source", slog.Any("error", err))
	}
}

func (o *rootOptions) open(ctx context.Context, cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger := cfg.Log.New(cmd.ErrOrStderr())

	convention := cfg.Dataset.Convention
	if o.convention != "" {
		convention = o.convention
	}
	variant, err := config.LoadVariant(cfg.Dataset.VariantFile, convention)
	if err != nil {
		return nil, err
	}
	if o.convention != "" {
		variant.Convention = o.convention
	}
	dsOpts, err := variant.DatasetOptions()
	if err != nil {
		return nil, err
	}
	lang, err := language.Parse(cfg.Dataset.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Dataset.Locale, err)
	}

	var (
		src     port.DatasetSource
		closeFn = func() error { return nil }
	)
	if o.csvPath != "" {
		src = csvfile.NewSource(o.csvPath, dsOpts)
	} else {
		s, err := wiring.NewSource(ctx, cfg, dsOpts, logger)
		if err != nil {
			return nil, err
		}
		src, closeFn = s, s.Close
	}

	memo := usecase.NewDatasetMemo(src, 0, logger)
	return &session{
		svc:    usecase.NewInsightsUseCase(memo, variant.Palette, lang),
		logger: logger,
		close:  closeFn,
	}, nil
}

// run opens a session, hands it to fn and closes it afterwards.
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx context.Context, svc *usecase.InsightsUseCase, q port.FilterQuery, out io.Writer) error) error {
	q, err := o.filter.query(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := o.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.finish()
	return fn(ctx, s.svc, q, cmd.OutOrStdout())
}

func printSummary(w io.Writer, text string) {
	fmt.Fprintf(w, "# %s\n", text)
}
