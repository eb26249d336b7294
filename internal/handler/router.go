package handler

import (
	"net/http"
	"time"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/infra/observability"
	"github.com/boddenberg/cards-api-go/internal/pagination"
	"github.com/boddenberg/cards-api-go/internal/port"
	"github.com/boddenberg/cards-api-go/internal/service"
	"github.com/boddenberg/cards-api-go/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Options configures the router.
type Options struct {
	// Store is pinged by /healthz. Nil reports only the API itself.
	Store port.Pinger
	// StoreName labels the store in /healthz.
	StoreName string
	// JWTSecret enables bearer authentication on /api/v1 when non-empty.
	JWTSecret string
	// Limits bounds the page size accepted from clients.
	Limits pagination.Limits
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(svcs *service.Services, opts Options, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(opts.Store, opts.StoreName, logger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	if opts.Limits.DefaultSize <= 0 || opts.Limits.MaxSize <= 0 {
		opts.Limits = pagination.DefaultLimits
	}
	d := &deps{
		validator: validation.New(),
		limits:    opts.Limits,
		logger:    logger,
	}

	// --- API v1 ---
	r.Route("/api/v1", func(r chi.Router) {
		if opts.JWTSecret != "" {
			r.Use(JWTAuthMiddleware([]byte(opts.JWTSecret), logger))
		}

		r.Get("/metrics/summary", metricsSummaryHandler(metrics))

		if svcs == nil {
			return
		}

		// Cards and their owned resources
		mountCRUD[domain.Card](r, "/cards", "cardId", svcs.Cards, d, func(r chi.Router) {
			mountScoped[domain.CardBalance](r, "/balances", svcs.Balances, d)
			mountScoped[domain.CardDispute](r, "/disputes", svcs.Disputes, d)
			mountScoped[domain.CardEnrollment](r, "/enrollments", svcs.Enrollments, d)
			mountScoped[domain.CardInterest](r, "/interests", svcs.Interests, d)
			mountScoped[domain.CardPromotion](r, "/promotions", svcs.Promotions, d)
			mountScoped[domain.CardPayment](r, "/payments", svcs.Payments, d)
			mountScoped[domain.CardActivity](r, "/activities", svcs.Activities, d)
		})

		// Reference catalog
		mountCRUD[domain.BIN](r, "/bins", "id", svcs.BINs, d, nil)
		mountCRUD[domain.CardNetwork](r, "/networks", "id", svcs.Networks, d, nil)
		mountCRUD[domain.Issuer](r, "/issuers", "id", svcs.Issuers, d, nil)
		mountCRUD[domain.CardMerchant](r, "/merchants", "id", svcs.Merchants, d, nil)
		mountCRUD[domain.CardAcquirer](r, "/acquirers", "id", svcs.Acquirers, d, nil)
		mountCRUD[domain.CardGateway](r, "/gateways", "id", svcs.Gateways, d, nil)
		mountCRUD[domain.CardProcessor](r, "/processors", "id", svcs.Processors, d, nil)
		mountCRUD[domain.CardTerminal](r, "/terminals", "id", svcs.Terminals, d, nil)
	})

	return r
}

func healthzHandler(store port.Pinger, storeName string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := time.Now().Format(time.RFC3339)

		services := []domain.ServiceHealth{
			{Name: "cards-api", Status: "healthy", LatencyMs: 0, LastChecked: now},
		}

		if store != nil {
			start := time.Now()
			err := store.Ping(ctx)
			sh := domain.ServiceHealth{
				Name:        storeName,
				Status:      "healthy",
				LatencyMs:   time.Since(start).Milliseconds(),
				LastChecked: now,
			}
			if err != nil {
				logger.Warn("health check: store unreachable", zap.String("store", storeName), zap.Error(err))
				sh.Status = "degraded"
				sh.Error = err.Error()
			}
			services = append(services, sh)
		}

		overallStatus := "healthy"
		for _, s := range services {
			if s.Status == "unhealthy" {
				overallStatus = "unhealthy"
				break
			}
			if s.Status == "degraded" {
				overallStatus = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:   overallStatus,
			Services: services,
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func metricsSummaryHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.Summary())
	}
}
