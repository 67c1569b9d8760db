package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"formulab/internal/api"
	"formulab/internal/api/handlers"
	"formulab/internal/catalog"
	"formulab/internal/recommend"
	"formulab/internal/report"
	"formulab/internal/repository"
	"formulab/internal/service"
	"formulab/internal/store"
	"formulab/internal/transport"
	"formulab/pkg/config"
	"formulab/pkg/logger"
	"formulab/pkg/postgres"
)

// @title Formulab API
// @version 1.0
// @description Cosmetics development-request intake with similar-formulation recommendation and report export

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting formulab service")

	// Load the reference-formulation catalog: Postgres when configured,
	// otherwise the xlsx workbook.
	ctx := context.Background()
	snapshot, err := loadCatalog(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load catalog", zap.Error(err))
	}
	appLogger.Info("Catalog loaded", zap.Int("entries", snapshot.Len()))

	// The record store lives for exactly one service session.
	requests := store.New()

	// Wire services
	requestService := service.NewRequestService(requests, appLogger)
	recommender := recommend.New(appLogger)
	recommendService := service.NewRecommendService(
		requests, snapshot, recommender,
		cfg.Recommend.TopK, cfg.Recommend.Clusters,
		appLogger,
	)

	renderer := report.NewRenderer(cfg.Report.FontPath)
	sheet := transport.NewSheetAppender(cfg.Sheet.WebhookURL, cfg.Sheet.Timeout, appLogger)
	mailer := transport.NewMailer(transport.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, appLogger)
	reportService := service.NewReportService(
		requestService, recommendService, renderer, sheet, mailer, appLogger,
	)

	// Initialize handlers
	requestHandler := handlers.NewRequestHandler(requestService, recommendService, reportService, appLogger)
	uploadHandler := handlers.NewUploadHandler(appLogger)

	// Setup router
	app := api.SetupRouter(requestHandler, uploadHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (*catalog.Snapshot, error) {
	if !cfg.Database.Enabled {
		appLogger.Info("Loading catalog from workbook", zap.String("path", cfg.Catalog.XLSXPath))
		return catalog.LoadXLSX(cfg.Catalog.XLSXPath, cfg.Catalog.Sheet)
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	catalogRepo := repository.NewCatalogRepository(db, appLogger)
	entries, err := catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewSnapshot(entries), nil
}
