package httpapi

import "net/http"

// getStatus handles GET /status: liveness of the session and metadata stores.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Status(r.Context()))
}

// getStats handles GET /stats: user and file counts.
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.app.GetStats(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
