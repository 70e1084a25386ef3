package httpadapter

import (
	"net/http"
)

// handleDomains returns the distinct categorical values and numeric extents
// of the current snapshot, used to populate filter controls.
func (h *Handler) handleDomains(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Domains(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, d.SnapshotID, toDomains(d))
}

// handleInvalidate drops the cached snapshot, reloads it from the source and
// returns the fresh domains.
func (h *Handler) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Reload(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, d.SnapshotID, toDomains(d))
}
