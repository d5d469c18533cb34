package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mvaneerd/investment-tracker-backend/internal/api"
	"github.com/mvaneerd/investment-tracker-backend/internal/config"
	"github.com/mvaneerd/investment-tracker-backend/internal/quote"
	"github.com/mvaneerd/investment-tracker-backend/internal/repository"
	"github.com/mvaneerd/investment-tracker-backend/internal/service"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage/postgres"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage/sheet"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage/sqlite"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the configured storage backend
	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	log.Printf("Connected to %s storage", cfg.Storage.Backend)

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(store)
	assetRepo := repository.NewAssetRepository(store)
	priceLogRepo := repository.NewPriceLogRepository(store)

	// Create services
	priceSource := quote.NewFinanceClient()
	systemService := service.NewSystemService(store)
	transactionService := service.NewTransactionService(transactionRepo)
	assetService := service.NewAssetService(assetRepo)
	portfolioService := service.NewPortfolioService(transactionService, priceSource)
	priceLogService := service.NewPriceLogService(assetRepo, priceLogRepo, priceSource)

	if err := assetService.EnsureDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed default assets: %v", err)
	}

	// Schedule the daily price log when configured
	if cfg.PriceLog.Schedule != "" {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(cfg.PriceLog.Schedule, func() {
			recorded, err := priceLogService.RecordDailyQuotes(context.Background())
			if err != nil {
				log.Printf("Price log run failed: %v", err)
				return
			}
			log.Printf("Price log recorded %d quotes", recorded)
		})
		if err != nil {
			log.Fatalf("Invalid price log schedule %q: %v", cfg.PriceLog.Schedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("Price log scheduled: %s", cfg.PriceLog.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, transactionService, assetService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// openStorage opens the backend selected in the configuration. All three
// implement the same provider interface; nothing past this point knows which
// one is in use.
func openStorage(cfg *config.Config) (storage.Provider, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.Open(cfg.Storage.SQLitePath)
	case config.BackendPostgres:
		return postgres.Open(postgres.Config{
			Host:     cfg.Storage.Postgres.Host,
			Port:     cfg.Storage.Postgres.Port,
			User:     cfg.Storage.Postgres.User,
			Password: cfg.Storage.Postgres.Password,
			Name:     cfg.Storage.Postgres.Name,
		})
	case config.BackendSheet:
		return sheet.Open(cfg.Storage.SheetDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
