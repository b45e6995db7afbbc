package app

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-demo/internal/config"
	"risk-demo/internal/export"
	"risk-demo/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		ListenAddr:           ":0",
		LogLevel:             "info",
		SessionTTL:           time.Hour,
		SessionSweepSchedule: "@every 5m",
		RateLimitRPS:         1000,
		RateLimitBurst:       1000,
		CORSAllowedOrigins:   []string{"*"},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(t.Context(), Deps{
		Cfg:      cfg,
		Archiver: &testutil.MockExportArchiver{},
		Logger:   slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	return a
}

func serve(a *App, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestRouter_Healthz(t *testing.T) {
	a := newTestApp(t, testConfig())

	rr := serve(a, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_RootRedirectsToUI(t *testing.T) {
	a := newTestApp(t, testConfig())

	rr := serve(a, http.MethodGet, "/")
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/ui", rr.Header().Get("Location"))
}

func TestRouter_MountsUIAndAPI(t *testing.T) {
	a := newTestApp(t, testConfig())

	rr := serve(a, http.MethodGet, "/ui")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	rr = serve(a, http.MethodGet, "/ui/static/app.css")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(a, http.MethodGet, "/api/v1/ratings")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 2, a.Sessions.Len(), "static assets do not create sessions")
}

func TestRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	a := newTestApp(t, cfg)

	require.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/api/v1/ratings").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(a, http.MethodGet, "/api/v1/ratings").Code)
	assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/healthz").Code, "health checks are not limited")
}

func TestNew_InvalidSweepSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.SessionSweepSchedule = "whenever"

	_, err := New(t.Context(), Deps{Cfg: cfg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sweep schedule")
}

func TestNew_TaxonomyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
departments: [Kalite]
risks: [Ürün Riski]
valueChainSteps: [Üretim Hattı]
`), 0o600))

	cfg := testConfig()
	cfg.TaxonomyFile = path
	a := newTestApp(t, cfg)
	assert.Equal(t, []string{"Kalite"}, a.Taxonomy.Departments)

	cfg.TaxonomyFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := New(t.Context(), Deps{Cfg: cfg})
	require.Error(t, err)
}

func TestArchiverFromConfig(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, isNop := archiverFromConfig(testConfig(), logger).(export.NopArchiver)
	assert.True(t, isNop)

	cfg := testConfig()
	key, secret, endpoint, region, bucket := "k", "s", "localhost:9000", "us-east-1", "exports"
	cfg.S3KeyID, cfg.S3Secret, cfg.S3Endpoint, cfg.S3Region, cfg.S3Bucket = &key, &secret, &endpoint, &region, &bucket
	_, isS3 := archiverFromConfig(cfg, logger).(*export.S3Archiver)
	assert.True(t, isS3)
}
