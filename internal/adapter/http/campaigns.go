package httpadapter

import (
	"net/http"
)

// handleCampaigns returns the filtered records. The optional `limit`
// parameter caps the number of rows returned; the summary still counts every
// match.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, err := parseInt(q, "limit", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Campaigns(r.Context(), f, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toCampaigns))
}
