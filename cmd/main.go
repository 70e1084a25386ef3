package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	httpadapter "campaign-insights/internal/adapter/http"
	"campaign-insights/internal/adapter/usecase"
	"campaign-insights/internal/config"
	"campaign-insights/internal/wiring"
)

// main is the entry point of the campaign insights server. It loads
// configuration, builds the configured dataset source, loads the first
// snapshot and then serves the dashboard API. A dataset that cannot be
// loaded at startup is fatal. On a termination signal the server shuts
// down gracefully.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	logger := cfg.Log.New(os.Stdout)

	variant, err := config.LoadVariant(cfg.Dataset.VariantFile, cfg.Dataset.Convention)
	if err != nil {
		logger.Error("variant error", slog.Any("error", err))
		return 1
	}
	opts, err := variant.DatasetOptions()
	if err != nil {
		logger.Error("variant error", slog.Any("error", err))
		return 1
	}
	lang, err := language.Parse(cfg.Dataset.Locale)
	if err != nil {
		logger.Error("invalid locale", slog.String("locale", cfg.Dataset.Locale), slog.Any("error", err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	src, err := wiring.NewSource(ctx, cfg, opts, logger)
	if err != nil {
		logger.Error("dataset source error", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Error("closing dataset source", slog.Any("error", err))
		}
	}()

	memo := usecase.NewDatasetMemo(src, cfg.Dataset.TTL, logger)
	if _, err = memo.Get(ctx); err != nil {
		logger.Error("failed to load dataset", slog.String("source", src.String()), slog.Any("error", err))
		return 1
	}

	svc := usecase.NewInsightsUseCase(memo, variant.Palette, lang)
	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.AllowedOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("variant", variant.Name))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return 1
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return 1
	}
	logger.Info("server gracefully stopped")
	return 0
}
