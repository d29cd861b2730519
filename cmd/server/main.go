package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aurora_backend/internal/api"
	"aurora_backend/internal/app/service"
	"aurora_backend/internal/common/security"
	"aurora_backend/internal/domain/repository"
	"aurora_backend/internal/platform/config"
	"aurora_backend/internal/platform/database"
	"aurora_backend/internal/platform/logger"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log.Info().Msg("configuration loaded")

	// 3. Initialize Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer db.Close()
	log.Info().Str("db", cfg.DBName).Msg("database connected")

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	reservationRepo := repository.NewPgReservationRepository(db)

	// 5. Initialize Services
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	userService := service.NewUserService(userRepo, hasher)
	reservationService := service.NewReservationService(reservationRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(userService, reservationService, cfg.StaticDir, log)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.APIPort).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped gracefully")
}
