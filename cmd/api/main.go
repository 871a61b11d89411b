package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"terra-carbon/market-portal/market-portal-backend/internal/admin"
	"terra-carbon/market-portal/market-portal-backend/internal/config"
	"terra-carbon/market-portal/market-portal-backend/internal/content"
	"terra-carbon/market-portal/market-portal-backend/internal/donations"
	"terra-carbon/market-portal/market-portal-backend/internal/export"
	"terra-carbon/market-portal/market-portal-backend/internal/marketplace"
	"terra-carbon/market-portal/market-portal-backend/internal/mockdata"
	"terra-carbon/market-portal/market-portal-backend/internal/notifications"
	"terra-carbon/market-portal/market-portal-backend/internal/onboarding"
	"terra-carbon/market-portal/market-portal-backend/internal/users"
	"terra-carbon/market-portal/market-portal-backend/internal/verification"
	"terra-carbon/market-portal/market-portal-backend/internal/webhooks"
	"terra-carbon/market-portal/market-portal-backend/pkg/storage"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment", zap.Error(err))
	}

	// Load configuration
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Connect to database
	dbURL := cfg.Database.GetDatabaseURL()
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&admin.ProjectDetail{}, &admin.MRVDocument{}, &admin.CreditIssuance{}, &admin.ActivityEntry{},
		&users.AdminUser{}, &users.UserActivity{}, &users.UserAudit{},
		&verification.QueueProject{}, &verification.QueueDocument{},
		&verification.DecisionRecord{}, &verification.Comment{},
		&onboarding.TourCompletion{},
	); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Webhook events live behind sqlx
	eventDB, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		logger.Fatal("Failed to connect to event database", zap.Error(err))
	}
	defer eventDB.Close()

	ctx := context.Background()

	// Document storage
	var docStore storage.S3Client
	if cfg.Storage.MockMode {
		docStore = storage.NewMemoryS3Client()
	} else {
		docStore, err = storage.NewS3Client(ctx, cfg.Storage.Region)
		if err != nil {
			logger.Fatal("Failed to initialize document storage", zap.Error(err))
		}
	}

	// Notification channels
	var emailChannel notifications.EmailChannel
	var smsChannel notifications.SMSChannel
	if cfg.Notifications.MockMode {
		emailChannel = notifications.NewMockEmailChannel(logger)
		smsChannel = notifications.NewMockSMSChannel(logger)
	} else {
		emailChannel, err = notifications.NewSESEmailChannel(ctx, cfg.Storage.Region, cfg.Notifications.SenderEmail)
		if err != nil {
			logger.Fatal("Failed to initialize email channel", zap.Error(err))
		}
		smsChannel, err = notifications.NewSNSSMSChannel(ctx, cfg.Storage.Region, cfg.Notifications.SMSTopicARN)
		if err != nil {
			logger.Fatal("Failed to initialize sms channel", zap.Error(err))
		}
	}

	hub := notifications.NewHub(logger)
	defer hub.Stop()

	notifService, err := notifications.NewService(db, emailChannel, smsChannel, hub, cfg.Notifications.SenderEmail, logger)
	if err != nil {
		logger.Fatal("Failed to initialize notifications", zap.Error(err))
	}
	notifHandler := notifications.NewHandler(notifService, hub, logger)

	// Admin project module
	adminRepo := admin.NewRepository(db)
	adminService := admin.NewService(adminRepo, notifService, docStore, cfg.Storage.DocumentBucket, logger)
	adminHandler := admin.NewHandler(adminService, logger)

	// Admin user module
	usersRepo := users.NewRepository(db)
	usersService := users.NewService(usersRepo, logger)
	usersHandler := users.NewHandler(usersService, logger)

	// Verification module
	verificationRepo := verification.NewRepository(db)
	verificationService := verification.NewService(verificationRepo, notifService, logger)
	verificationHandler := verification.NewHandler(verificationService, logger)

	// Webhook module
	webhookRepo := webhooks.NewPostgresRepository(eventDB)
	webhookHandler := webhooks.NewHandler(webhookRepo, logger)
	probe := webhooks.NewHTTPProbe(10 * time.Second)
	poller := webhooks.NewPoller(webhookRepo, probe, cfg.Webhooks.PollInterval, logger)
	poller.Start(ctx)
	defer poller.Stop()

	// Marketplace and donations run off seed data
	marketplaceService := marketplace.NewService(mockdata.NewListingSource())
	marketplaceHandler := marketplace.NewHandler(marketplaceService, logger)
	donationSource := mockdata.NewDonationSource()
	donationsHandler := donations.NewHandler(donationSource, logger)

	// Content feed
	contentClient := content.NewClient(cfg.Content.BaseURL, cfg.Content.MockMode,
		cfg.Content.RevalidateTime, cfg.Content.RequestTimeout, logger)
	contentHandler := content.NewHandler(contentClient, logger)

	// Onboarding
	tourStore := onboarding.NewCompletionStore(db)
	onboardingHandler := onboarding.NewHandler(tourStore, logger)

	// Exports
	exportHandler := export.NewHandler(donationSource, adminRepo, logger)

	// Setup Router
	router := gin.Default()
	router.Use(corsMiddleware())

	api := router.Group("/api/v1")
	{
		adminHandler.RegisterRoutes(api)
		usersHandler.RegisterRoutes(api)
		verificationHandler.RegisterRoutes(api)
		webhookHandler.RegisterRoutes(api)
		marketplaceHandler.RegisterRoutes(api)
		donationsHandler.RegisterRoutes(api)
		contentHandler.RegisterRoutes(api)
		onboardingHandler.RegisterRoutes(api)
		notifHandler.RegisterRoutes(api)
		exportHandler.RegisterRoutes(api)
	}

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Server.GetServerAddr(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()
	logger.Info("Server started", zap.String("addr", srv.Addr))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
