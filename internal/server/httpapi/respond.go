package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/ASLawan/alx-files-manager/internal/server/models"
)

// fileResponse is the wire shape of a catalog node. ParentID is the number 0
// for root nodes and a hex id string otherwise, matching the established API.
type fileResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsPublic  bool   `json:"isPublic"`
	ParentID  any    `json:"parentId"`
	LocalPath string `json:"localPath,omitempty"`
}

func toFileResponse(n *models.FileNode) fileResponse {
	parent := any(0)
	if n.ParentID != nil {
		parent = n.ParentID.Hex()
	}
	return fileResponse{
		ID:        n.ID.Hex(),
		UserID:    n.UserID.Hex(),
		Name:      n.Name,
		Type:      string(n.Type),
		IsPublic:  n.IsPublic,
		ParentID:  parent,
		LocalPath: n.LocalPath,
	}
}

func toFileResponses(nodes []*models.FileNode) []fileResponse {
	out := make([]fileResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toFileResponse(n))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// serviceError maps a sentinel from the service layer to the wire status and
// message of the established API. Unrecognized errors are logged by the
// caller and reported as a plain 500.
var serviceErrors = []struct {
	err    error
	status int
	msg    string
}{
	{common.ErrorUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{common.ErrorNotFound, http.StatusNotFound, "Not found"},
	{common.ErrorAlreadyExists, http.StatusBadRequest, "Already exist"},
	{common.ErrorMissingEmail, http.StatusBadRequest, "Missing email"},
	{common.ErrorMissingPassword, http.StatusBadRequest, "Missing password"},
	{common.ErrorMissingName, http.StatusBadRequest, "Missing name"},
	{common.ErrorMissingType, http.StatusBadRequest, "Missing type"},
	{common.ErrorMissingData, http.StatusBadRequest, "Missing data"},
	{common.ErrorInvalidData, http.StatusBadRequest, "Invalid data"},
	{common.ErrorParentNotFound, http.StatusBadRequest, "Parent not found"},
	{common.ErrorParentNotFolder, http.StatusBadRequest, "Parent is not a folder"},
	{common.ErrorFolderHasNoContent, http.StatusBadRequest, "A folder doesn't have content"},
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			writeError(w, se.status, se.msg)
			return
		}
	}

	h.logger.Error(r.Context(), "request failed",
		"method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
