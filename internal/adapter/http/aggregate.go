package httpadapter

import (
	"context"
	"net/http"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

const (
	defaultTopN = 10
	defaultBins = 30
)

type groupReduceFunc func(ctx context.Context, q port.FilterQuery, by, value domain.Column) (*port.Result[[]dataset.ValueBucket], error)

// handleGroupCount counts filtered records per category of `by`.
func (h *Handler) handleGroupCount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	by, err := parseColumn(q, "by")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.GroupCount(r.Context(), f, by)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toCounts))
}

// handleGroupMean averages `value` per category of `by`.
func (h *Handler) handleGroupMean(w http.ResponseWriter, r *http.Request) {
	h.groupReduce(w, r, h.svc.GroupMean)
}

// handleGroupSum totals `value` per category of `by`.
func (h *Handler) handleGroupSum(w http.ResponseWriter, r *http.Request) {
	h.groupReduce(w, r, h.svc.GroupSum)
}

func (h *Handler) groupReduce(w http.ResponseWriter, r *http.Request, reduce groupReduceFunc) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	by, err := parseColumn(q, "by")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	value, err := parseColumn(q, "value")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := reduce(r.Context(), f, by, value)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toValues))
}

// handleTopN returns the `n` records with the largest `value`, 10 by default.
func (h *Handler) handleTopN(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	value, err := parseColumn(q, "value")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	n, err := parseInt(q, "n", defaultTopN)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.TopN(r.Context(), f, n, value)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toCampaigns))
}

// handleDescribe returns descriptive statistics for the comma separated
// `columns`, or for every numeric column when none are given.
func (h *Handler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	cols, err := parseColumns(q, "columns")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Describe(r.Context(), f, cols)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toDescribe))
}

// handleCrossTab returns the mean of `value` per (`row`, `col`) pair.
func (h *Handler) handleCrossTab(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var row, col, value domain.Column
	for _, p := range []struct {
		name string
		dst  *domain.Column
	}{{"row", &row}, {"col", &col}, {"value", &value}} {
		if *p.dst, err = parseColumn(q, p.name); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	res, err := h.svc.CrossTab(r.Context(), f, row, col, value)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toCrossTab))
}

// handleHistogram bins `value` into `bins` equal-width buckets, 30 by default.
func (h *Handler) handleHistogram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	value, err := parseColumn(q, "value")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	bins, err := parseInt(q, "bins", defaultBins)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Histogram(r.Context(), f, value, bins)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toBins))
}

// handleBoxPlot returns the five-number summary of `value` per category of
// `by`.
func (h *Handler) handleBoxPlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	by, err := parseColumn(q, "by")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	value, err := parseColumn(q, "value")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.BoxPlot(r.Context(), f, by, value)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res.SnapshotID, toEnvelope(res, toBoxPlot))
}
