package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/albapepper/lineage-data/internal/api/handler"
	"github.com/albapepper/lineage-data/internal/config"
	"github.com/albapepper/lineage-data/internal/db"
	"github.com/albapepper/lineage-data/internal/franchise"
	"github.com/albapepper/lineage-data/internal/pipeline"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. pool may be nil when no database is configured.
func NewRouter(result *pipeline.Result, reg *franchise.Registry, pool *db.Pool, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "Link"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(result, reg, pool, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Get("/report", h.GetReport)
		r.Get("/findings", h.GetFindings)
		r.Get("/franchises", h.GetFranchises)
		r.Get("/franchises/{id}", h.GetFranchise)
		r.Get("/unmapped", h.GetUnmapped)
	})

	return r
}
