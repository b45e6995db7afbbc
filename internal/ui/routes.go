package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"risk-demo/internal/ui/assets"
)

// StaticPath is where the embedded assets are served.
const StaticPath = "/ui/static/"

// StaticHandler serves the embedded stylesheet. It needs no session, so it is
// mounted outside the session middleware.
func StaticHandler() http.Handler {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.StripPrefix(StaticPath, http.FileServer(http.FS(staticFS)))
}

// MountRoutes registers the UI under r, which is expected to be mounted at
// /ui behind the session middleware.
func MountRoutes(r chi.Router, h *Handler) {
	r.Use(h.EnsureCSRFToken)
	r.Use(h.RequireCSRF)
	r.Get("/", h.AssessmentsPage)
	r.Post("/assessments", h.CreateAssessment)
	r.Post("/assessments/{index}/delete", h.DeleteAssessment)
	r.Post("/assessments/clear", h.ClearAssessments)
	r.Get("/export", h.ExportAssessments)
}
