package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/lfsc/juscalc/internal/adapter/http"
	"github.com/lfsc/juscalc/internal/adapter/http/handler"
	postgresRepo "github.com/lfsc/juscalc/internal/adapter/repository/postgres"
	redisRepo "github.com/lfsc/juscalc/internal/adapter/repository/redis"
	"github.com/lfsc/juscalc/internal/infrastructure/config"
	"github.com/lfsc/juscalc/internal/infrastructure/logger"
	"github.com/lfsc/juscalc/internal/infrastructure/postgres"
	"github.com/lfsc/juscalc/internal/infrastructure/redis"
	"github.com/lfsc/juscalc/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.SetGlobalLevel(appLogger.GetLevel())

	ctx := context.Background()

	// Connect to PostgreSQL
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPoolWithConfig(connectCtx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	connectCancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(appLogger)
	indexRepo := postgresRepo.NewIndexRateRepository(pool, retrier)
	calcRepo := postgresRepo.NewCalculationRepository(pool)
	rateCache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Index provider with Redis caching in front of Postgres
	provider := usecase.NewCachedIndexProvider(indexRepo, rateCache, appLogger, cfg.RateCacheTTL)

	// Initialize use cases
	correctionUC := usecase.NewCorrectionUsecase(provider, calcRepo, idGen, appLogger)
	latePaymentUC := usecase.NewLatePaymentUsecase(provider, calcRepo, idGen, appLogger)
	settlementUC := usecase.NewSettlementUsecase(provider, calcRepo, idGen, appLogger)
	fgtsUC := usecase.NewFGTSUsecase(provider, calcRepo, idGen, appLogger)
	indexUC := usecase.NewIndexUsecase(provider)
	queryUC := usecase.NewCalculationQueryUsecase(calcRepo)

	// Initialize handlers
	calculationHandler := handler.NewCalculationHandler(correctionUC, latePaymentUC, queryUC)
	settlementHandler := handler.NewSettlementHandler(settlementUC, fgtsUC)
	indexHandler := handler.NewIndexHandler(indexUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CalculationHandler: calculationHandler,
		SettlementHandler:  settlementHandler,
		IndexHandler:       indexHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Logger:             appLogger,
		RateLimitPerSec:    cfg.RateLimitPerSec,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
