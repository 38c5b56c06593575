package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/flockwise/flockwise/internal/adapter/api"
	"github.com/flockwise/flockwise/internal/adapter/identity"
	"github.com/flockwise/flockwise/internal/adapter/metrics"
	"github.com/flockwise/flockwise/internal/adapter/repository/postgres"
	"github.com/flockwise/flockwise/internal/pkg/config"
	"github.com/flockwise/flockwise/internal/pkg/logger"
	"github.com/flockwise/flockwise/internal/usecase"

	_ "github.com/lib/pq" // Keep for postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	m := metrics.NewCommandMetrics()

	// --- Metrics Server ---
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: metricsMux,
	}

	go func() {
		log.Info("starting metrics server", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server failed", "error", err)
		}
	}()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database and Redis Connections ---
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisAddr)
		if err != nil {
			log.Error("failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("could not connect to redis, identity lookups will hit the database", "error", err)
		}
	}

	// --- Initialize Repositories ---
	coopRepo := postgres.NewCoopRepository(db, log)
	flockRepo := postgres.NewFlockRepository(db, log)
	recordRepo := postgres.NewDailyRecordRepository(db, log)
	purchaseRepo := postgres.NewPurchaseRepository(db, log)

	resolver := identity.NewResolver(db, redisClient, log, cfg.IdentityCacheTTL, m)

	// --- Initialize Use Cases ---
	svc := api.Services{
		Coops:     usecase.NewCoopCommands(coopRepo, flockRepo, log),
		Flocks:    usecase.NewFlockCommands(flockRepo, coopRepo, log),
		Records:   usecase.NewDailyRecordCommands(recordRepo, flockRepo, log),
		Purchases: usecase.NewPurchaseCommands(purchaseRepo, coopRepo, log),
		Queries:   usecase.NewQueries(coopRepo, flockRepo, recordRepo, purchaseRepo, log),
	}

	// --- Initialize API Server ---
	router := api.NewRouter(svc, resolver, log, m, rate.Limit(cfg.MutationRPS), cfg.MutationBurst)
	apiServer := &http.Server{
		Addr:         cfg.APIServerAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		log.Info("starting api server", "addr", apiServer.Addr)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("api server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	log.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("metrics server shutdown failed", "error", err)
	}
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("api server shutdown failed", "error", err)
	}

	log.Info("shutdown complete")
}
