// Package httpapi exposes the service layer over the REST surface: account
// registration, session connect/disconnect, file upload and retrieval, and
// the operational status endpoints.
package httpapi

import (
	"github.com/ASLawan/alx-files-manager/internal/logging"
	"github.com/ASLawan/alx-files-manager/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// tokenHeader carries the session token on authenticated requests.
const tokenHeader = "X-Token"

type Handler struct {
	users  *services.UserService
	files  *services.FileService
	app    *services.AppService
	logger logging.Logger
}

func NewHandler(u *services.UserService, f *services.FileService, a *services.AppService, l logging.Logger) *Handler {
	return &Handler{
		users:  u,
		files:  f,
		app:    a,
		logger: l.With("module", "httpapi"),
	}
}

// Routes assembles the chi router for the full API surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/status", h.getStatus)
	r.Get("/stats", h.getStats)

	r.Post("/users", h.postUsers)
	r.Get("/connect", h.getConnect)
	r.Get("/disconnect", h.getDisconnect)
	r.Get("/users/me", h.getMe)

	r.Post("/files", h.postFiles)
	r.Get("/files", h.getFilesIndex)
	r.Get("/files/{id}", h.getFileByID)
	r.Put("/files/{id}/publish", h.putPublish)
	r.Put("/files/{id}/unpublish", h.putUnpublish)
	r.Get("/files/{id}/data", h.getFileData)

	return r
}
