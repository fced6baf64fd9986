// Package httpapi assembles the public router: platform middleware, health and
// metrics endpoints, and the tax-details routes.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bemyrider/internal/platform/metrics"
	"bemyrider/internal/platform/middleware"
	"bemyrider/pkg/platform/httputil"
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// CheckFunc adapts a ping function to HealthChecker.
type CheckFunc func(ctx context.Context) error

func (f CheckFunc) Health(ctx context.Context) error { return f(ctx) }

// DegradedReporter is implemented by services that can run in a degraded mode.
type DegradedReporter interface {
	CacheDegraded() bool
}

// Deps carries everything the router needs. Nil checks and a nil Degraded are
// skipped.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Checks   map[string]HealthChecker
	Degraded DegradedReporter
	Modules  []Registrar
}

const healthCheckTimeout = 2 * time.Second

// NewRouter wires middleware, /health, /metrics and every module.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger, deps.Metrics))

	r.Get("/health", healthHandler(deps.Checks, deps.Degraded))
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, m := range deps.Modules {
		m.Register(r)
	}
	return r
}

type healthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Cache        string            `json:"cache,omitempty"`
}

// healthHandler answers 503 only when a required dependency is down. An open
// cache breaker is reported but keeps the service "ok".
func healthHandler(checks map[string]HealthChecker, degraded DegradedReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		for name, check := range checks {
			if check == nil {
				continue
			}
			if resp.Dependencies == nil {
				resp.Dependencies = make(map[string]string, len(checks))
			}
			if err := check.Health(ctx); err != nil {
				resp.Dependencies[name] = "down"
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Dependencies[name] = "up"
		}
		if degraded != nil {
			resp.Cache = "ok"
			if degraded.CacheDegraded() {
				resp.Cache = "degraded"
			}
		}
		httputil.WriteJSON(w, status, resp)
	}
}
