package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrops-br/inventory-dashboard-api/internal/app/service"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/config"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/identity"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/telemetry"
	"github.com/mrops-br/inventory-dashboard-api/internal/pkg/clock"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize OpenTelemetry
	telem, err := telemetry.NewTelemetry(&cfg.OTLP)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ensure telemetry is shutdown on exit
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	// Get tracer, meter, and logger instances
	tracer := telem.TracerProvider.Tracer("inventory-api")
	meter := telem.MeterProvider.Meter("inventory-api")
	logger := telem.Logger

	logger.Info("Starting Inventory Dashboard API")

	clk := clock.RealClock{}

	// Initialize catalog (dependency injection)
	repo := memory.NewCatalogRepository(clk, tracer, logger)
	if cfg.Seed {
		if err := repo.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	// Catalog gauges observe the store through its subscription.
	if _, err := memory.RegisterCatalogMetrics(repo, meter); err != nil {
		logger.Error("Failed to register catalog metrics", "error", err.Error())
	}

	// Initialize auth gate and restore any pre-existing session
	provider := identity.NewStaticProvider(cfg.Auth.Email, cfg.Auth.Password, cfg.Auth.RestoreEmail, logger)
	gate := service.NewAuthGate(provider, clk, tracer, meter, logger)
	gate.Restore(ctx)

	// Initialize services
	productService := service.NewProductService(repo, clk, tracer, meter, logger)
	analyticsService := service.NewAnalyticsService(repo, tracer, meter, logger)

	// Initialize handlers
	handlers := http.Handlers{
		Product:   handler.NewProductHandler(productService, logger),
		Analytics: handler.NewAnalyticsHandler(analyticsService, logger),
		Auth:      handler.NewAuthHandler(gate, logger),
	}

	// Initialize HTTP server
	server := http.NewServer(&cfg.Server, handlers, gate, logger, telem)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server error", "error", err.Error())
			cancel()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err.Error())
	}

	logger.Info("Server stopped")
}
