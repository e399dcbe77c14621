package main

import (
	"context"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/config"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/repository"
	"github.com/kahvecikaan/gaming-store/internal/service"
	"github.com/kahvecikaan/gaming-store/internal/store"
	httpTransport "github.com/kahvecikaan/gaming-store/internal/transport/http"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hclog.Default().Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "gaming-store",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// The server starts even when the store is missing or down; the
	// services degrade instead
	gateway := openStore(cfg, logger.Named("store"))

	// Initialize the validator
	validator := domain.NewValidation()

	// Initialize the repositories
	productRepo := repository.NewProductRepository(gateway, validator, logger.Named("product-repository"))
	orderRepo := repository.NewOrderRepository(gateway, logger.Named("order-repository"))

	// Initialize the services
	cs := service.NewCatalogService(productRepo, validator, logger.Named("catalog-service"))
	co := service.NewCheckoutService(orderRepo, validator, logger.Named("checkout-service"))
	ds := service.NewDiagnosticsService(gateway, service.StoreSettings{
		DatabaseURLSet:  cfg.DatabaseURLSet(),
		DatabaseNameSet: cfg.DatabaseNameSet(),
	}, logger.Named("diagnostics-service"))

	// Initialize HTTP handlers
	h := httpTransport.NewHandler(cs, co, ds, logger.Named("http-handler"))

	corsConfig := httpTransport.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORSAllowedOrigins

	// Initialize the router
	router := httpTransport.NewRouter(h, validator, logger, corsConfig)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.StoreTimeout + 10*time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", cfg.BindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutting down server", "signal", sig)

	// Context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", "error", err)
	}

	if err := gateway.Close(shutdownCtx); err != nil {
		logger.Error("Error closing document store", "error", err)
	}
}

// openStore returns the MongoDB gateway, or an offline one when the store
// is not configured or the client cannot be created.
func openStore(cfg *config.Config, logger hclog.Logger) store.Gateway {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	db, err := store.Open(ctx, store.Options{
		URL:      cfg.DatabaseURL,
		Database: cfg.DatabaseName,
		Timeout:  cfg.StoreTimeout,
	}, logger)
	if err != nil {
		logger.Warn("Document store unavailable, serving demonstration data", "error", err)
		return store.NewOffline(err)
	}

	// the client reconnects on demand, so a failed ping is only reported
	if err := db.Ping(ctx); err != nil {
		logger.Warn("Document store is not reachable", "database", cfg.DatabaseName, "error", err)
	} else {
		logger.Info("Connected to document store", "database", cfg.DatabaseName)
	}

	return db
}
