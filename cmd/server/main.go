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

	api "bicirent-backend/internal/api/http"
	"bicirent-backend/internal/config"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/repository/postgres"
	"bicirent-backend/internal/security"
	"bicirent-backend/internal/service"
	"bicirent-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting BiciRent server...", "log_level", cfg.Log.Level)

	// Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	// Photo storage backend
	var backend storage.Backend
	var mockBackend storage.Backend
	switch cfg.Storage.Type {
	case "firebase":
		backend, err = storage.NewFirebaseBackend(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize firebase storage: %v", err)
		}
		logger.Info("Using firebase storage", "bucket", cfg.Storage.Bucket)
	default:
		mock, err := storage.NewMockBackend(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		backend = mock
		mockBackend = mock
		logger.Info("Using mock storage", "dir", cfg.Storage.UploadDir)
	}

	// Services
	tokens := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	authSvc := service.NewAuthService(store.UserRepository, store.RegionalRepository, tokens)
	userSvc := service.NewUserService(store.UserRepository)
	regionalSvc := service.NewRegionalService(store.RegionalRepository)
	bicycleSvc := service.NewBicycleService(store.BicycleRepository, store.RegionalRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.BicycleRepository, store.UserRepository, emailSvc)
	eventSvc := service.NewEventService(store.EventRepository, store.UserRepository, emailSvc)
	maintenanceSvc := service.NewMaintenanceService(store.MaintenanceRepository, store.BicycleRepository)
	reportSvc := service.NewReportService(store.ReportRepository)
	photoSvc := service.NewPhotoService(store.BicycleRepository, backend)

	handlers := api.NewHandlers(
		authSvc, userSvc, regionalSvc, bicycleSvc, rentalSvc,
		eventSvc, maintenanceSvc, reportSvc, photoSvc,
	)
	router := api.NewRouter(handlers, tokens, mockBackend)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
