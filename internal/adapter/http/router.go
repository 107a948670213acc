package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lfsc/juscalc/internal/adapter/http/handler"
	"github.com/lfsc/juscalc/internal/adapter/http/middleware"
	"github.com/lfsc/juscalc/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CalculationHandler *handler.CalculationHandler
	SettlementHandler  *handler.SettlementHandler
	IndexHandler       *handler.IndexHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	Logger             zerolog.Logger
	RateLimitPerSec    float64
	RateLimitBurst     int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimitPerSec > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst)
		r.Use(limiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Calculations
		r.Route("/calculations", func(r chi.Router) {
			r.Post("/correction", cfg.CalculationHandler.Correct)
			r.Post("/late-payment", cfg.CalculationHandler.LatePayment)
			r.Post("/fgts", cfg.SettlementHandler.FGTS)
			r.Get("/", cfg.CalculationHandler.List)
			r.Get("/{id}", cfg.CalculationHandler.Get)
		})

		// Settlements
		r.Post("/settlements", cfg.SettlementHandler.Settle)

		// Index series
		r.Get("/indexes/{code}/rates", cfg.IndexHandler.Rates)
	})

	return r
}
