package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "placereview-backend/internal/api/http"
	"placereview-backend/internal/config"
	"placereview-backend/internal/jobs"
	"placereview-backend/internal/logger"
	"placereview-backend/internal/repository/postgres"
	"placereview-backend/internal/scheduler"
	"placereview-backend/internal/security"
	"placereview-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting PlaceReview backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := postgres.Migrate(context.Background(), db); err != nil {
		logger.Error("Failed to apply schema", "error", err)
		log.Fatalf("Failed to apply schema: %v", err)
	}

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	coinService := service.NewCoinService(store.CoinRepository, store.UserRepository)
	reservationService := service.NewReservationService(
		store.ReservationRepository,
		store.ReviewRepository,
		store.UserRepository,
		coinService,
		cfg.Reservation.DepositAmount,
		cfg.Reservation.HoldHours,
		cfg.Reservation.CooldownDays,
	)
	reviewService := service.NewReviewService(
		store.ReviewRepository,
		store.ReservationRepository,
		reservationService,
		coinService,
	)
	authService := service.NewAuthService(store.UserRepository, tokenManager)

	// The server hosts the expiry sweep too, so reservations roll over
	// without a separate cronjob deployment.
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Reservation: reservationService,
		Coin:        coinService,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	router := httpapi.NewRouter(authService, coinService, reservationService, reviewService, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	cronScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
