package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sipzooppp/orders/internal/adapter/csvlog"
	"github.com/sipzooppp/orders/internal/adapter/logger"
	"github.com/sipzooppp/orders/internal/app/analytics"
	"github.com/sipzooppp/orders/internal/app/checkout"
	"github.com/sipzooppp/orders/internal/config"
	"github.com/sipzooppp/orders/internal/domain"
	"github.com/sipzooppp/orders/internal/interfaces"

	httpAdapter "github.com/sipzooppp/orders/internal/adapter/http"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	dataDir := flag.String("data-dir", "", "Order log directory (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dataDir != "" {
		cfg.Storage.Dir = *dataDir
	}

	ctx := context.Background()

	// Initialize logger
	lgr := logger.New("pos-server", cfg.Logging.Level)

	clock := interfaces.SystemClock{}

	// Open the per-run order log. The file name is fixed at startup and
	// never changes for the lifetime of the run.
	store, err := csvlog.New(cfg.Storage.Dir, clock.Now())
	if err != nil {
		log.Fatalf("Failed to open order log: %v", err)
	}

	if _, err := store.Load(ctx); err != nil {
		if !errors.Is(err, domain.ErrCorruptLog) {
			log.Fatalf("Failed to load order log: %v", err)
		}
		// Corrupt log is recoverable: warn and continue with an empty log.
		lgr.Warn("corrupt_log", "Order log is corrupt, starting with an empty log", "startup", map[string]interface{}{
			"path": store.Path(),
		})
	}

	lgr.Info("store_opened", "Order log opened", "startup", map[string]interface{}{
		"path":   store.Path(),
		"orders": len(store.All()),
	})

	// Session state: the catalog is fixed at process start, the cart lives
	// for the whole run and is passed by reference to the handlers.
	catalog := domain.DefaultCatalog()
	cart := domain.NewCart(catalog)

	// Initialize services
	checkoutService := checkout.NewService(store, clock, lgr)
	analyticsService := analytics.NewService(store, lgr)

	// Initialize HTTP handlers
	cartHandler := httpAdapter.NewCartHandler(catalog, cart, lgr)
	orderHandler := httpAdapter.NewOrderHandler(checkoutService, cart, lgr)
	analyticsHandler := httpAdapter.NewAnalyticsHandler(analyticsService, store, lgr)

	// Setup HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/menu", cartHandler.GetMenu)
	mux.HandleFunc("/cart", cartHandler.HandleCart)
	mux.HandleFunc("/cart/items", cartHandler.SetQuantity)
	mux.HandleFunc("/checkout", orderHandler.Checkout)
	mux.HandleFunc("/orders", analyticsHandler.ListOrders)
	mux.HandleFunc("/orders/export", analyticsHandler.ExportLog)
	mux.HandleFunc("/analytics", analyticsHandler.GetSummary)

	// Apply middleware
	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("POS server started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port":      cfg.Server.Port,
		"order_log": store.Path(),
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down POS server", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
