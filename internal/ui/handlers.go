package ui

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"risk-demo/internal/domain"
	"risk-demo/internal/export"
)

// Toast messages shown after a successful action.
const (
	msgAssessmentSaved   = "Risk değerlendirmesi kaydedildi"
	msgAssessmentDeleted = "Risk değerlendirmesi silindi"
	msgAssessmentsClear  = "Tüm değerlendirmeler temizlendi"
)

func (h *Handler) AssessmentsPage(w http.ResponseWriter, r *http.Request) {
	h.renderAssessmentsPage(w, r, http.StatusOK, assessmentForm{}, h.popFlash(w, r))
}

func (h *Handler) renderAssessmentsPage(w http.ResponseWriter, r *http.Request, status int, form assessmentForm, t *toast) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	records, err := h.Assessments.List(r.Context(), sess)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	d := assessmentPageData{
		Taxonomy: h.Taxonomy,
		Form:     form,
		Records:  records,
		Toast:    t,
		CSRF:     csrfFieldProvider(r),
	}
	if latest, ok := sess.Latest(); ok {
		d.Latest = &latest
	}
	renderHTML(w, status, assessmentPage(d))
}

func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderServiceError(w, r, domain.ErrValidation("invalid form body"))
		return
	}
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	form := assessmentForm{
		Department:     formString(r.PostForm, "department"),
		Risk:           formString(r.PostForm, "risk"),
		ValueChainStep: formString(r.PostForm, "valueChainStep"),
		Probability:    formString(r.PostForm, "probability"),
		Frequency:      formString(r.PostForm, "frequency"),
		Severity:       formString(r.PostForm, "severity"),
	}
	req := domain.CreateAssessmentRequest{
		Department:     form.Department,
		Risk:           form.Risk,
		ValueChainStep: form.ValueChainStep,
		Probability:    formFloat(r.PostForm, "probability"),
		Frequency:      formFloat(r.PostForm, "frequency"),
		Severity:       formFloat(r.PostForm, "severity"),
	}

	if _, err := h.Assessments.Create(r.Context(), sess, req); err != nil {
		if t, ok := toastForError(err); ok {
			h.renderAssessmentsPage(w, r, http.StatusBadRequest, form, t)
			return
		}
		h.renderServiceError(w, r, err)
		return
	}
	h.redirectWithToast(w, r, toastSuccess, msgAssessmentSaved)
}

func (h *Handler) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.renderServiceError(w, r, domain.ErrValidation("invalid record index"))
		return
	}

	if err := h.Assessments.Delete(r.Context(), sess, index); err != nil {
		if t, ok := toastForError(err); ok {
			h.redirectWithToast(w, r, t.Kind, t.Message)
			return
		}
		h.renderServiceError(w, r, err)
		return
	}
	h.redirectWithToast(w, r, toastSuccess, msgAssessmentDeleted)
}

func (h *Handler) ClearAssessments(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	if err := h.Assessments.Clear(r.Context(), sess); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	h.redirectWithToast(w, r, toastSuccess, msgAssessmentsClear)
}

func (h *Handler) ExportAssessments(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if _, err := h.Assessments.Export(r.Context(), sess, &buf); err != nil {
		if t, ok := toastForError(err); ok {
			h.redirectWithToast(w, r, t.Kind, t.Message)
			return
		}
		h.renderServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
