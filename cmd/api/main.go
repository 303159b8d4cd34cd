package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ats-backend/config"
	_ "ats-backend/docs" // Important for Swagger
	"ats-backend/internal/delivery/http/middleware"
	v1 "ats-backend/internal/delivery/http/v1"
	"ats-backend/internal/domain"
	"ats-backend/internal/repository/postgres"
	"ats-backend/internal/repository/sqlite"
	"ats-backend/internal/usecase"
	"ats-backend/pkg/audit"
	"ats-backend/pkg/database"
	"ats-backend/pkg/logger"
	"ats-backend/pkg/redis"
	"ats-backend/pkg/validation"
)

// @title           ATS Backend API
// @version         1.0
// @description     Candidate intake, screening decisions, search and export.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting ats backend", "port", cfg.Port, "driver", cfg.DBDriver)

	auditLogger := audit.New("ats-backend", cfg.AppEnv)
	defer auditLogger.Sync()

	// 3. Setup Storage
	candidateRepo, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 4. Setup Redis (optional)
	var redisPinger usecase.Pinger
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			redisPinger = usecase.PingFunc(redis.HealthCheck)
			defer redis.Close()
		}
	}

	// 5. Setup UseCases
	validate := validation.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate, auditLogger)
	healthUC := usecase.NewHealthUsecase(candidateRepo, redisPinger)

	// 6. Setup Router
	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()

	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		HealthUC:    healthUC,
		Config:      cfg,
		RateLimit: middleware.RateLimitMiddleware(limiterCtx, middleware.NewRateLimitConfig(
			cfg.RateLimitGlobalThreshold,
			time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		)),
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// openStore connects to the configured backend, creates the schema and
// returns the candidate repository with its close function.
func openStore(cfg *config.Config) (domain.CandidateRepository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.DBDriver {
	case "sqlite":
		db, err := database.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db, cfg.EnforceUniqueContacts); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqlite.NewCandidateRepository(db), func() { db.Close() }, nil
	default:
		pool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool, cfg.EnforceUniqueContacts); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewCandidateRepository(pool), pool.Close, nil
	}
}
