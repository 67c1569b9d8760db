package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"formulab/internal/catalog"
	"formulab/internal/repository"
	"formulab/pkg/config"
	"formulab/pkg/logger"
	"formulab/pkg/postgres"
)

// Loads the reference-formulation workbook into the catalog_entries table.
// Existing IDs are left untouched, so re-running the tool is safe.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if !cfg.Database.Enabled {
		appLogger.Fatal("DB_HOST is not configured; nothing to seed")
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Loading catalog workbook", zap.String("path", cfg.Catalog.XLSXPath))
	snapshot, err := catalog.LoadXLSX(cfg.Catalog.XLSXPath, cfg.Catalog.Sheet)
	if err != nil {
		appLogger.Fatal("Failed to load catalog workbook", zap.Error(err))
	}

	catalogRepo := repository.NewCatalogRepository(db, appLogger)

	inserted := 0
	for _, entry := range snapshot.Entries() {
		e := entry
		if err := catalogRepo.Insert(ctx, &e); err != nil {
			appLogger.Fatal("Failed to insert catalog entry",
				zap.String("id", entry.ID),
				zap.Error(err),
			)
		}
		inserted++
	}

	total, err := catalogRepo.Count(ctx)
	if err != nil {
		appLogger.Fatal("Failed to count catalog entries", zap.Error(err))
	}

	appLogger.Info("Catalog seeding completed",
		zap.Int("processed", inserted),
		zap.Int64("total", total),
	)
}
