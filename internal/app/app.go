// Package app wires configuration, services, and HTTP routing for the risk
// assessment server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"risk-demo/internal/api"
	"risk-demo/internal/config"
	"risk-demo/internal/domain"
	"risk-demo/internal/export"
	"risk-demo/internal/middleware"
	"risk-demo/internal/service/assessment"
	"risk-demo/internal/session"
	"risk-demo/internal/taxonomy"
	"risk-demo/internal/ui"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg      *config.Config
	Taxonomy *taxonomy.Taxonomy    // nil loads Cfg.TaxonomyFile or the built-in lists
	Archiver domain.ExportArchiver // nil derives one from the S3 settings
	Logger   *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Sessions    *session.Store
	Sweeper     *session.Sweeper
	Assessments *assessment.Service
	Taxonomy    *taxonomy.Taxonomy
	Router      http.Handler
}

// New wires the session store, services, and router. ctx bounds background
// work started by middleware.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tax := deps.Taxonomy
	if tax == nil {
		var err error
		tax, err = loadTaxonomy(cfg.TaxonomyFile)
		if err != nil {
			return nil, err
		}
	}

	archiver := deps.Archiver
	if archiver == nil {
		archiver = archiverFromConfig(cfg, logger)
	}

	if err := session.ValidateSchedule(cfg.SessionSweepSchedule); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store := session.NewStore(cfg.SessionTTL, logger.With("component", "session"))
	svc := assessment.NewService(tax, archiver, logger.With("component", "assessment"))

	a := &App{
		Sessions:    store,
		Sweeper:     session.NewSweeper(store, cfg.SessionSweepSchedule, logger.With("component", "sweeper")),
		Assessments: svc,
		Taxonomy:    tax,
	}
	a.Router = newRouter(ctx, cfg, a, logger)
	return a, nil
}

func newRouter(ctx context.Context, cfg *config.Config, a *App, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui", http.StatusFound)
	})
	r.Handle(ui.StaticPath+"*", ui.StaticHandler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}))
		r.Use(middleware.Session(a.Sessions, cfg.IsProduction()))

		uiHandler := ui.NewHandler(a.Assessments, a.Taxonomy, cfg.IsProduction(), logger)
		r.Route("/ui", func(r chi.Router) {
			ui.MountRoutes(r, uiHandler)
		})

		apiHandler := api.NewHandler(a.Assessments, a.Taxonomy, logger)
		r.Route("/api/v1", func(r chi.Router) {
			api.MountRoutes(r, apiHandler, cfg.CORSAllowedOrigins)
		})
	})

	return r
}

func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	return tax, nil
}

// archiverFromConfig returns an S3 archiver when the bucket is fully
// configured and a no-op archiver otherwise.
func archiverFromConfig(cfg *config.Config, logger *slog.Logger) domain.ExportArchiver {
	if !cfg.HasS3Config() {
		return export.NopArchiver{}
	}
	s3Archiver, err := export.NewS3Archiver(cfg)
	if err != nil {
		logger.Warn("export archive disabled", "error", err)
		return export.NopArchiver{}
	}
	logger.Info("export archive enabled", "bucket", *cfg.S3Bucket)
	return s3Archiver
}
