package httpadapter

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// handleExport streams the filtered records as a CSV attachment. The body is
// buffered first so that a failed export still gets a proper status code.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = h.svc.Export(r.Context(), f, &buf); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_data.csv"`)
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Error("write export error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
	}
}
