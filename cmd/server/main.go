package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "meetingdesk-backend/internal/api/http"
	"meetingdesk-backend/internal/config"
	"meetingdesk-backend/internal/logger"
	"meetingdesk-backend/internal/repository/postgres"
	"meetingdesk-backend/internal/security"
	"meetingdesk-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting MeetingDesk backend", "log_level", cfg.Log.Level, "address", cfg.GetServerAddress())

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	availabilitySvc := service.NewAvailabilityService(
		store.RequestRepository,
		store.RoomRepository,
		store.ZoomAccountRepository,
	)
	bookingSvc := service.NewBookingService(
		store.RequestRepository,
		store.RoomRepository,
		store.ZoomAccountRepository,
		store.UserRepository,
		availabilitySvc,
		emailSvc,
		store.NotificationRepository,
	)
	catalogSvc := service.NewCatalogService(store.RoomRepository, store.ZoomAccountRepository)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	router := api.NewRouter(
		api.NewAuthMiddleware(tokenManager),
		api.NewAuthHandler(authSvc),
		api.NewRequestHandler(bookingSvc, availabilitySvc),
		api.NewCatalogHandler(catalogSvc),
		api.NewNotificationHandler(noteSvc),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
