package httpapi

import "net/http"

// getConnect handles GET /connect: exchange Basic credentials for a session
// token.
func (h *Handler) getConnect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.users.Login(r.Context(), email, password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// getDisconnect handles GET /disconnect: revoke the session token.
func (h *Handler) getDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Logout(r.Context(), r.Header.Get(tokenHeader)); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
