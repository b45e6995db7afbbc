package ui

import (
	"log/slog"
	"net/http"

	"risk-demo/internal/domain"
	"risk-demo/internal/service/assessment"
	"risk-demo/internal/session"
	"risk-demo/internal/taxonomy"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Assessments *assessment.Service
	Taxonomy    *taxonomy.Taxonomy
	Production  bool
	Logger      *slog.Logger
}

func NewHandler(assessments *assessment.Service, tax *taxonomy.Taxonomy, production bool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		Assessments: assessments,
		Taxonomy:    tax,
		Production:  production,
		Logger:      logger.With("component", "ui"),
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// sessionFromRequest returns the session bound by the session middleware.
func sessionFromRequest(r *http.Request) (*session.Session, error) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		return nil, domain.ErrAccessDenied("no session cookie")
	}
	return s, nil
}
