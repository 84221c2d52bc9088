package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/feed"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/router"
	"github.com/bidpulse/bidpulse/internal/store"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
	BuildTime = "unknown" // Injected via ldflags during build
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)
	logger.Info("Analytics service starting...",
		"version", Version, "commit", GitCommit, "build time", BuildTime)

	// In-memory record store shared by the feed consumer and the API
	recordStore := store.NewRecordStore()

	// Connect to the record feed (configurable backend)
	logger.Info("Connecting to feed", "type", cfg.Feed.Type, "url", cfg.Feed.URL)
	subscriber, err := feed.NewSubscriber(cfg.Feed)
	if err != nil {
		logger.Fatal("Failed to connect to feed", "error", err)
	}
	defer func() { _ = subscriber.Close() }()
	logger.Info("Feed connection established")

	// Create context for background services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start consuming record events into the store
	consumer := feed.NewConsumer(recordStore)
	if err := consumer.Start(ctx, subscriber); err != nil {
		logger.Fatal("Failed to start feed consumer", "error", err)
	}

	// Log authentication status
	if cfg.Auth.Enabled {
		logger.Info("API key authentication enabled", "num_keys", len(cfg.Auth.APIKeys))
	} else {
		logger.Warn("API key authentication DISABLED - all requests will be allowed")
	}

	// Initialize router
	app := router.New(logger, recordStore, *cfg)

	// Start server in goroutine
	go func() {
		addr := cfg.Server.Addr()
		logger.Info("Server listening", "address", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	// Graceful shutdown with 10 second timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
