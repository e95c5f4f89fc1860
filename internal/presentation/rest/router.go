package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig collects what the HTTP router serves.
type RouterConfig struct {
	Calculator     *CalculatorHandler
	Health         *HealthHandler
	Metrics        http.Handler
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(traceContext)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", cfg.Health.liveness)
	r.Get("/readyz", cfg.Health.readiness)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}

	r.Route("/v1/loans/calculate", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
		}
		r.Post("/", cfg.Calculator.calculate)
		r.Post("/penalty", cfg.Calculator.calculatePenalty)
		r.Post("/settlement", cfg.Calculator.quoteSettlement)
	})

	return r
}
