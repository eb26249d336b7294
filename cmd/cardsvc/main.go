package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boddenberg/cards-api-go/internal/config"
	"github.com/boddenberg/cards-api-go/internal/handler"
	"github.com/boddenberg/cards-api-go/internal/infra/cache"
	"github.com/boddenberg/cards-api-go/internal/infra/memstore"
	"github.com/boddenberg/cards-api-go/internal/infra/observability"
	"github.com/boddenberg/cards-api-go/internal/infra/postgres"
	"github.com/boddenberg/cards-api-go/internal/infra/postgrest"
	"github.com/boddenberg/cards-api-go/internal/infra/resilience"
	"github.com/boddenberg/cards-api-go/internal/pagination"
	"github.com/boddenberg/cards-api-go/internal/port"
	"github.com/boddenberg/cards-api-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("store_backend", cfg.StoreBackend),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Bool("auth_enabled", cfg.JWTSecret != ""),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "cards-api")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	exec := resilience.NewExecutor(cfg.StoreBackend, resilienceCfg, metrics)

	// --- Store ---
	var (
		repos port.Repositories
		store port.Pinger
	)

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := postgres.Open(context.Background(), cfg.DatabaseURL, cfg.DBMaxOpenConns)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		pg := postgres.NewStore(db, exec, logger)
		defer pg.Close()

		if cfg.DBAutoMigrate {
			if err := pg.Migrate(context.Background()); err != nil {
				logger.Fatal("failed to apply schema", zap.Error(err))
			}
		}
		repos, store = pg.Repositories(), pg

	case config.BackendPostgREST:
		logger.Info("using PostgREST as data backend", zap.String("postgrest_url", cfg.PostgRESTURL))
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		client := postgrest.NewClient(
			httpClient,
			cfg.PostgRESTURL,
			cfg.PostgRESTAPIKey,
			cfg.PostgRESTServiceKey,
			exec.WithBulkhead(resilience.NewBulkhead(cfg.MaxConcurrency)),
			logger,
		)
		repos, store = postgrest.NewRepositories(client), client

	default:
		logger.Warn("using in-memory store; data is lost on restart")
		repos, store = memstore.NewRepositories(), memstore.Store{}
	}

	// --- Cache ---
	catalogCache := cache.New[any](cfg.CacheTTL)
	defer catalogCache.Close()

	// --- Services ---
	pan, err := service.NewPANProtector(cfg.PANFingerprintKey)
	if err != nil {
		logger.Fatal("invalid PAN fingerprint key", zap.Error(err))
	}
	if cfg.PANFingerprintKey == "" {
		logger.Warn("PAN_FINGERPRINT_KEY not set, card fingerprints are unkeyed")
	}
	svcs := service.NewServices(repos, pan, catalogCache, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(svcs, handler.Options{
		Store:     store,
		StoreName: cfg.StoreBackend,
		JWTSecret: cfg.JWTSecret,
		Limits: pagination.Limits{
			DefaultSize: cfg.DefaultPageSize,
			MaxSize:     cfg.MaxPageSize,
		},
	}, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
