package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// snapshotHeader carries the ID of the dataset snapshot a response was
// computed on, so clients can tell when the data behind a chart changed.
const snapshotHeader = "X-Snapshot-Id"

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, snapshotID string, v any) {
	if snapshotID != "" {
		w.Header().Set(snapshotHeader, snapshotID)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
	}
}
