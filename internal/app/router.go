package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/saas-inventory-backend/internal/config"
	"github.com/heartmarshall/saas-inventory-backend/internal/transport/middleware"
	"github.com/heartmarshall/saas-inventory-backend/internal/transport/rest"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps are the collaborators of the HTTP handler tree.
type RouterDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Services *Services
	DB       pinger
	// Registry receives the HTTP metrics and backs the metrics endpoint.
	// Nil disables metrics regardless of config.
	Registry *prometheus.Registry
}

// Router is the root HTTP handler. Close releases the rate limiter janitor.
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close stops background work owned by the router.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
}

// NewRouter registers every route and wraps the mux in the middleware chain.
func NewRouter(deps RouterDeps) *Router {
	cfg := deps.Config
	maxBody := cfg.Server.MaxBodyBytes

	tools := rest.NewToolHandler(deps.Services.Tools, maxBody, deps.Logger)
	categories := rest.NewCategoryHandler(deps.Services.Categories, maxBody, deps.Logger)
	analytics := rest.NewAnalyticsHandler(deps.Services.Analytics, deps.Logger)
	health := rest.NewHealthHandler(deps.DB, Version)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/tools", tools.List)
	mux.HandleFunc("POST /api/tools", tools.Create)
	mux.HandleFunc("GET /api/tools/{id}", tools.Get)
	mux.HandleFunc("PUT /api/tools/{id}", tools.Update)
	mux.HandleFunc("DELETE /api/tools/{id}", tools.Delete)

	mux.HandleFunc("GET /api/categories", categories.List)
	mux.HandleFunc("POST /api/categories", categories.Create)
	mux.HandleFunc("GET /api/categories/{id}", categories.Get)
	mux.HandleFunc("DELETE /api/categories/{id}", categories.Delete)

	mux.HandleFunc("GET /api/analytics/department-costs", analytics.DepartmentCosts)
	mux.HandleFunc("GET /api/analytics/expensive-tools", analytics.ExpensiveTools)
	mux.HandleFunc("GET /api/analytics/tools-by-category", analytics.ToolsByCategory)
	mux.HandleFunc("GET /api/analytics/low-usage-tools", analytics.LowUsageTools)
	mux.HandleFunc("GET /api/analytics/vendor-summary", analytics.VendorSummary)

	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	metricsOn := cfg.Metrics.Enabled && deps.Registry != nil
	if metricsOn {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{
			Registry: deps.Registry,
		}))
	}

	// Logger and Metrics read r.Pattern after the mux has set it, so they
	// must not sit outside a middleware that replaces the request.
	mws := []middleware.Middleware{
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(deps.Logger),
	}
	if metricsOn {
		mws = append(mws, middleware.NewMetrics(deps.Registry).Middleware)
	}
	mws = append(mws, middleware.CORS(cfg.CORS))

	router := &Router{}
	if cfg.RateLimit.Enabled {
		router.limiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			cfg.RateLimit.CleanupInterval,
		)
		mws = append(mws, router.limiter.Middleware)
	}

	router.Handler = middleware.Chain(mws...)(mux)
	return router
}
