// Package api serves the JSON interface under /api/v1.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"risk-demo/internal/domain"
	"risk-demo/internal/export"
	"risk-demo/internal/scoring"
	"risk-demo/internal/service/assessment"
	"risk-demo/internal/session"
	"risk-demo/internal/taxonomy"
)

const maxBodyBytes = 1 << 20

// Handler implements the JSON API.
type Handler struct {
	Assessments *assessment.Service
	Taxonomy    *taxonomy.Taxonomy
	Logger      *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(assessments *assessment.Service, tax *taxonomy.Taxonomy, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		Assessments: assessments,
		Taxonomy:    tax,
		Logger:      logger.With("component", "api"),
	}
}

// MountRoutes registers the API under r, which is expected to be mounted at
// /api/v1 behind the session middleware.
func MountRoutes(r chi.Router, h *Handler, allowedOrigins []string) {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ratings", h.ListRatings)
	r.Get("/taxonomy", h.GetTaxonomy)
	r.Post("/score", h.Score)
	r.Get("/assessments", h.ListAssessments)
	r.Post("/assessments", h.CreateAssessment)
	r.Delete("/assessments/{assessmentID}", h.DeleteAssessment)
	r.Get("/assessments/export", h.ExportAssessments)
}

// Bracket is the wire form of one classification step.
type Bracket struct {
	Above           *float64 `json:"above,omitempty"`
	FinancialImpact string   `json:"financial_impact"`
	RiskDegree      string   `json:"risk_degree"`
	DisplayImpact   string   `json:"display_impact"`
	DisplayDegree   string   `json:"display_degree"`
}

// RatingsResponse lists the described rating values and the score brackets.
type RatingsResponse struct {
	Ratings  []scoring.CanonicalRating `json:"ratings"`
	Brackets []Bracket                 `json:"brackets"`
}

// ScoreRequest is the body of POST /score.
type ScoreRequest struct {
	Probability float64 `json:"probability"`
	Frequency   float64 `json:"frequency"`
	Severity    float64 `json:"severity"`
}

// AssessmentList is the body of GET /assessments.
type AssessmentList struct {
	Data  []domain.Assessment `json:"data"`
	Count int                 `json:"count"`
}

func (h *Handler) ListRatings(w http.ResponseWriter, _ *http.Request) {
	resp := RatingsResponse{Ratings: scoring.CanonicalRatings()}
	for _, b := range scoring.Brackets() {
		out := Bracket{
			FinancialImpact: b.Impact,
			RiskDegree:      b.Degree,
			DisplayImpact:   b.DisplayImpact,
			DisplayDegree:   b.DisplayDegree,
		}
		if b.Bounded {
			above := b.Above
			out.Above = &above
		}
		resp.Brackets = append(resp.Brackets, out)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetTaxonomy(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Taxonomy)
}

func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	// Reuse the form's rating rule: every rating present and non-zero.
	check := domain.CreateAssessmentRequest{
		Department: "-", Risk: "-", ValueChainStep: "-",
		Probability: req.Probability, Frequency: req.Frequency, Severity: req.Severity,
	}
	if err := check.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scoring.Assess(req.Probability, req.Frequency, req.Severity))
}

func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	records, err := h.Assessments.List(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.Assessment{}
	}
	writeJSON(w, http.StatusOK, AssessmentList{Data: records, Count: len(records)})
}

func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.CreateAssessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.Assessments.Create(r.Context(), sess, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Assessments.DeleteByID(r.Context(), sess, chi.URLParam(r, "assessmentID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ExportAssessments(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if _, err := h.Assessments.Export(r.Context(), sess, &buf); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func sessionFromRequest(r *http.Request) (*session.Session, error) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		return nil, domain.ErrAccessDenied("no session cookie")
	}
	return s, nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ErrValidation("request body is required")
		}
		return domain.ErrValidation("invalid JSON body: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
