package main

import (
	"context"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/config"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/repository"
	"github.com/kahvecikaan/gaming-store/internal/service"
	"github.com/kahvecikaan/gaming-store/internal/store"
	"os"
)

// seed loads the demonstration catalog into the configured document store
func main() {
	cfg, err := config.Load()
	if err != nil {
		hclog.Default().Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "gaming-store-seed",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout*4)
	defer cancel()

	db, err := store.Open(ctx, store.Options{
		URL:      cfg.DatabaseURL,
		Database: cfg.DatabaseName,
		Timeout:  cfg.StoreTimeout,
	}, logger.Named("store"))
	if err != nil {
		logger.Error("Unable to open document store", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := db.Ping(ctx); err != nil {
		logger.Error("Document store is not reachable", "error", err)
		os.Exit(1)
	}

	validator := domain.NewValidation()
	productRepo := repository.NewProductRepository(db, validator, logger.Named("product-repository"))
	cs := service.NewCatalogService(productRepo, validator, logger.Named("catalog-service"))

	failed := 0
	for _, p := range service.FallbackCatalog() {
		// the store assigns its own ids
		p.ID = ""
		if err := cs.AddProduct(ctx, p); err != nil {
			logger.Error("Unable to seed product", "title", p.Title, "error", err)
			failed++
			continue
		}
		logger.Info("Seeded product", "id", p.ID, "title", p.Title)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
