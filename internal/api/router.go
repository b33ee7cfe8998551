package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/monasquad/keepalive/internal/api/handler"
	apimw "github.com/monasquad/keepalive/internal/api/middleware"
	"github.com/monasquad/keepalive/internal/config"
	"github.com/monasquad/keepalive/internal/ratelimiter"
	"github.com/monasquad/keepalive/internal/repository"
)

// NewRouter builds the listener's handler.
//
// By default no routes are registered and every request gets chi's 404.
// ENABLE_STATUS_ROUTES adds a small, rate-limited status surface.
func NewRouter(
	cfg *config.Config,
	store *repository.ResultStore,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))

	if !cfg.EnableStatusRoutes {
		return r
	}

	hh := handler.NewHealthHandler()
	sh := handler.NewStatusHandler(store, cfg.HealthCheckURL, cfg.HealthCheckSchedule)

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(ratelimiter.New(cfg.StatusRateLimit)))

		r.Get("/healthz", hh.Health)
		r.Get("/status", sh.GetStatus)
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	})

	return r
}
