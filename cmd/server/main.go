package main

import (
	"context"
	"fmt"
	"log"

	"airquote/internal/config"
	"airquote/internal/domain"
	"airquote/internal/handler"
	"airquote/internal/pdfexport"
	"airquote/internal/repository/postgres"
	"airquote/internal/router"
	"airquote/internal/service"
	"airquote/internal/sheetsync"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	taxonomyRepo := postgres.NewTaxonomyRepo(db)
	productRepo := postgres.NewProductRepo(db)
	preferenceRepo := postgres.NewPreferenceRepo(db)

	// Initialize gateways
	fetcher := sheetsync.NewHTTPFetcher(&cfg.Sheet)
	renderer := pdfexport.NewRenderer()

	// Initialize services
	taxonomySvc := service.NewTaxonomyService(taxonomyRepo)
	catalogSvc := service.NewCatalogService(productRepo, taxonomySvc)
	preferenceSvc := service.NewPreferenceService(preferenceRepo)
	statsSvc := service.NewStatsService(productRepo, taxonomyRepo)
	quoteSvc := service.NewQuoteService(productRepo, renderer, cfg.Quote.SessionTTL)
	syncSvc := service.NewSheetSyncService(fetcher, productRepo, taxonomySvc, preferenceSvc)

	// Initialize handlers
	taxonomyH := handler.NewTaxonomyHandler(taxonomySvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	quoteH := handler.NewQuoteHandler(quoteSvc)
	sheetH := handler.NewSheetHandler(syncSvc)
	preferenceH := handler.NewPreferenceHandler(preferenceSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	toolsH := handler.NewToolsHandler()
	healthH := handler.NewHealthHandler(db)

	// With auto sync enabled and a sheet URL stored, refresh the catalog in
	// the background. A failed sync is logged, never fatal.
	go func() {
		ctx := context.Background()
		auto, err := preferenceSvc.Get(ctx, domain.PrefAutoSync)
		if err != nil || auto != "true" {
			return
		}
		url, err := preferenceSvc.Get(ctx, domain.PrefSheetURL)
		if err != nil || url == "" {
			return
		}
		if result, err := syncSvc.Sync(ctx, url); err != nil {
			log.Printf("startup sheet sync failed: %v", err)
		} else {
			log.Printf("startup sheet sync imported %d products", result.Imported)
		}
	}()

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins,
		taxonomyH, catalogH, quoteH, sheetH, preferenceH, statsH, toolsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
