package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ASLawan/alx-files-manager/internal/server/models"
	"github.com/ASLawan/alx-files-manager/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type uploadRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ParentID json.RawMessage `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

// parentIDString normalizes the inbound parentId, which established clients
// send either as the number 0 or as a hex id string.
func parentIDString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10)
	}

	return string(raw)
}

// postFiles handles POST /files: create a folder, file, or image node.
func (h *Handler) postFiles(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing name")
		return
	}

	node, err := h.files.Upload(r.Context(), r.Header.Get(tokenHeader), services.CreateFileRequest{
		Name:     req.Name,
		Type:     models.FileType(req.Type),
		ParentID: parentIDString(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFileResponse(node))
}

// getFileByID handles GET /files/{id}.
func (h *Handler) getFileByID(w http.ResponseWriter, r *http.Request) {
	node, err := h.files.GetByID(r.Context(), r.Header.Get(tokenHeader), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFileResponse(node))
}

// getFilesIndex handles GET /files?parentId=&page=.
func (h *Handler) getFilesIndex(w http.ResponseWriter, r *http.Request) {
	var page int64
	if p := r.URL.Query().Get("page"); p != "" {
		// A malformed page falls back to the first one.
		page, _ = strconv.ParseInt(p, 10, 64)
	}

	nodes, err := h.files.List(r.Context(), r.Header.Get(tokenHeader), r.URL.Query().Get("parentId"), page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFileResponses(nodes))
}

// putPublish handles PUT /files/{id}/publish.
func (h *Handler) putPublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// putUnpublish handles PUT /files/{id}/unpublish.
func (h *Handler) putUnpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *Handler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	node, err := h.files.SetVisibility(r.Context(), r.Header.Get(tokenHeader), chi.URLParam(r, "id"), isPublic)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFileResponse(node))
}

// getFileData handles GET /files/{id}/data. The token is optional; public
// nodes are served to anonymous callers.
func (h *Handler) getFileData(w http.ResponseWriter, r *http.Request) {
	mimeType, content, err := h.files.GetContent(r.Context(), r.Header.Get(tokenHeader), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
