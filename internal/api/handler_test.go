package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"risk-demo/internal/domain"
	"risk-demo/internal/export"
	"risk-demo/internal/middleware"
	"risk-demo/internal/scoring"
	"risk-demo/internal/service/assessment"
	"risk-demo/internal/session"
	"risk-demo/internal/taxonomy"
)

type apiClient struct {
	t       *testing.T
	handler http.Handler
	session *http.Cookie
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	tax := taxonomy.Default()
	h := NewHandler(assessment.NewService(tax, nil, logger), tax, logger)

	r := chi.NewRouter()
	r.Use(middleware.Session(session.NewStore(time.Hour, logger), false))
	r.Route("/api/v1", func(r chi.Router) {
		MountRoutes(r, h, []string{"*"})
	})
	return &apiClient{t: t, handler: r}
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.AddCookie(c.session)
	}
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	for _, ck := range rr.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			c.session = ck
		}
	}
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func validCreate() domain.CreateAssessmentRequest {
	return domain.CreateAssessmentRequest{
		Department:     "Finans",
		Risk:           "Finansal Risk",
		ValueChainStep: "Operasyonlar",
		Probability:    6,
		Frequency:      6,
		Severity:       10,
	}
}

func TestListRatings(t *testing.T) {
	c := newTestAPI(t)

	rr := c.do(http.MethodGet, "/api/v1/ratings", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[RatingsResponse](t, rr)
	require.Len(t, resp.Ratings, 6)
	assert.InDelta(t, 10, resp.Ratings[0].Value, 1e-9)
	require.Len(t, resp.Brackets, 5)
	require.NotNil(t, resp.Brackets[0].Above)
	assert.InDelta(t, 400, *resp.Brackets[0].Above, 1e-9)
	assert.Nil(t, resp.Brackets[4].Above)
	assert.Equal(t, scoring.ImpactUpTo1M, resp.Brackets[4].FinancialImpact)
}

func TestGetTaxonomy(t *testing.T) {
	c := newTestAPI(t)

	rr := c.do(http.MethodGet, "/api/v1/taxonomy", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	tax := decode[taxonomy.Taxonomy](t, rr)
	assert.Contains(t, tax.Departments, "Finans")
	assert.Contains(t, tax.Risks, "Finansal Risk")
	assert.Contains(t, tax.ValueChainSteps, "Operasyonlar")
}

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantImpact string
		wantScore  float64
	}{
		{name: "boundary stays in lower bracket", body: ScoreRequest{Probability: 10, Frequency: 4, Severity: 10}, wantStatus: http.StatusOK, wantImpact: scoring.Impact10To20M, wantScore: 400},
		{name: "above 400", body: ScoreRequest{Probability: 10, Frequency: 10, Severity: 5}, wantStatus: http.StatusOK, wantImpact: scoring.ImpactOver20M, wantScore: 500},
		{name: "missing rating", body: ScoreRequest{Probability: 10, Frequency: 10}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestAPI(t)
			rr := c.do(http.MethodPost, "/api/v1/score", tt.body)
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				e := decode[Error](t, rr)
				assert.Equal(t, tt.wantStatus, e.Code)
				assert.Equal(t, domain.MsgRatingsRequired, e.Message)
				return
			}
			res := decode[scoring.Result](t, rr)
			assert.InDelta(t, tt.wantScore, res.RiskScore, 1e-9)
			assert.Equal(t, tt.wantImpact, res.FinancialImpact)
		})
	}
}

func TestScore_InvalidJSON(t *testing.T) {
	c := newTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, http.StatusBadRequest, decode[Error](t, rr).Code)
}

func TestAssessments_Lifecycle(t *testing.T) {
	c := newTestAPI(t)

	rr := c.do(http.MethodGet, "/api/v1/assessments", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, decode[AssessmentList](t, rr).Count)
	assert.Contains(t, rr.Body.String(), `"data":[]`)

	rr = c.do(http.MethodPost, "/api/v1/assessments", validCreate())
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[domain.Assessment](t, rr)
	assert.InDelta(t, 360, created.RiskScore, 1e-9)
	assert.Equal(t, scoring.DegreeHigh, created.RiskDegree)

	rr = c.do(http.MethodGet, "/api/v1/assessments", nil)
	list := decode[AssessmentList](t, rr)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, created.ID, list.Data[0].ID)

	rr = c.do(http.MethodDelete, "/api/v1/assessments/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = c.do(http.MethodDelete, "/api/v1/assessments/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, http.StatusNotFound, decode[Error](t, rr).Code)
}

func TestCreateAssessment_ValidationMessages(t *testing.T) {
	c := newTestAPI(t)

	req := validCreate()
	req.Risk = ""
	rr := c.do(http.MethodPost, "/api/v1/assessments", req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, domain.MsgSelectionRequired, decode[Error](t, rr).Message)

	req = validCreate()
	req.Frequency = 0
	rr = c.do(http.MethodPost, "/api/v1/assessments", req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, domain.MsgRatingsRequired, decode[Error](t, rr).Message)
}

func TestExportAssessments(t *testing.T) {
	c := newTestAPI(t)

	rr := c.do(http.MethodGet, "/api/v1/assessments/export", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, domain.MsgNothingToExport, decode[Error](t, rr).Message)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/assessments", validCreate()).Code)

	rr = c.do(http.MethodGet, "/api/v1/assessments/export", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, export.ContentType, rr.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestHTTPStatusFromDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrNotFound("x"), want: http.StatusNotFound},
		{name: "access denied", err: domain.ErrAccessDenied("x"), want: http.StatusForbidden},
		{name: "validation", err: domain.ErrValidation("x"), want: http.StatusBadRequest},
		{name: "conflict", err: domain.ErrConflict("x"), want: http.StatusConflict},
		{name: "wrapped validation", err: errors.Join(errors.New("ctx"), domain.ErrValidation("x")), want: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpStatusFromDomainError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	rr := httptest.NewRecorder()

	h.writeError(rr, httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil), errors.New("disk on fire"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	e := decode[Error](t, rr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), e.Message)
}

func TestCORS_Preflight(t *testing.T) {
	c := newTestAPI(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/score", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
