package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// serving the dashboard's data API. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.InsightsUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. allowedOrigins
// lists the browser origins permitted by CORS.
func NewHandler(svc port.InsightsUseCase, logger *slog.Logger, allowedOrigins []string) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", snapshotHeader},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/domains", h.handleDomains)
		r.Post("/dataset/invalidate", h.handleInvalidate)
		r.Get("/campaigns", h.handleCampaigns)
		r.Get("/export", h.handleExport)

		r.Route("/aggregate", func(r chi.Router) {
			r.Get("/count", h.handleGroupCount)
			r.Get("/mean", h.handleGroupMean)
			r.Get("/sum", h.handleGroupSum)
		})
		r.Get("/top", h.handleTopN)
		r.Get("/describe", h.handleDescribe)
		r.Get("/crosstab", h.handleCrossTab)
		r.Get("/histogram", h.handleHistogram)
		r.Get("/boxplot", h.handleBoxPlot)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

// fail maps usecase errors to HTTP statuses. Caller mistakes are echoed
// back; load and internal failures are logged and hidden.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrColumnNotFound), errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrDataLoad):
		h.logger.Error("dataset unavailable", slog.String("request_id", middleware.GetReqID(r.Context())), slog.Any("error", err))
		http.Error(w, "dataset unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error("request error", slog.String("request_id", middleware.GetReqID(r.Context())), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
