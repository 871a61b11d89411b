package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"terra-carbon/market-portal/market-portal-backend/internal/config"
	"terra-carbon/market-portal/market-portal-backend/internal/webhooks"
)

// The webhook worker resolves in-flight delivery retries on a cron schedule.
// It runs alongside the API server and shares the same event table.
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment", zap.Error(err))
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDatabaseURL())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := webhooks.NewPostgresRepository(db)
	probe := webhooks.NewHTTPProbe(10 * time.Second)
	poller := webhooks.NewPoller(repo, probe, cfg.Webhooks.PollInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Webhooks.CronSpec, func() {
		poller.ResolveOnce(ctx)
	}); err != nil {
		logger.Fatal("Invalid cron spec",
			zap.String("spec", cfg.Webhooks.CronSpec), zap.Error(err))
	}
	scheduler.Start()
	logger.Info("Webhook worker started", zap.String("cron", cfg.Webhooks.CronSpec))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down webhook worker...")
	cancel()
	<-scheduler.Stop().Done()
	logger.Info("Webhook worker exited")
}
