// Package main runs the AP class recommendation API.
//
//	@title			AP Recommendation Service
//	@version		1.0
//	@description	Student profiles, the AP class catalog, and interest-based class recommendations.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stemsi/aprec-backend/internal/config"
	"github.com/stemsi/aprec-backend/internal/database"
	"github.com/stemsi/aprec-backend/internal/handler"
	"github.com/stemsi/aprec-backend/internal/logger"
	"github.com/stemsi/aprec-backend/internal/middleware"
	"github.com/stemsi/aprec-backend/internal/repository"
	"github.com/stemsi/aprec-backend/internal/router"
	"github.com/stemsi/aprec-backend/internal/service"
	"github.com/stemsi/aprec-backend/internal/validator"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Int("default_top_k", cfg.DefaultTopK).
		Msg("Starting AP recommendation service")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Ensure Schema ─────────────────────────────────────────────────
	dsn, err := cfg.DatabaseDSN()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid database settings")
	}
	if err := database.EnsureSchema(dsn, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	store := repository.NewPostgresStore(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	studentService := service.NewStudentProfileService(store, log)
	classService := service.NewAPClassService(store, log)
	recommendationService := service.NewRecommendationService(store, cfg.DefaultTopK, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		System:         handler.NewSystemHandler(),
		StudentProfile: handler.NewStudentProfileHandler(studentService),
		APClass:        handler.NewAPClassHandler(classService),
		Recommendation: handler.NewRecommendationHandler(recommendationService),
	}

	var limiter *middleware.RateLimiter
	if cfg.RecommendRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RecommendRateLimit, time.Minute, log)
		defer limiter.Stop()
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log, limiter)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
