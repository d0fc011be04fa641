package httpapi

import (
	"encoding/json"
	"net/http"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// postUsers handles POST /users: account registration.
func (h *Handler) postUsers(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing email")
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID.Hex(), Email: user.Email})
}

// getMe handles GET /users/me: resolve the session token to its account.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.WhoAmI(r.Context(), r.Header.Get(tokenHeader))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID.Hex(), Email: user.Email})
}
