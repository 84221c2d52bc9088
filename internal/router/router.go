package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/handlers"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/middleware"
	"github.com/bidpulse/bidpulse/internal/store"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, recordStore *store.RecordStore, cfg config.Config) *handlers.Handler {
	h := handlers.New(logger, recordStore, cfg.Analytics)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger, logging.DefaultMiddlewareConfig()))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	// Record Ingestion Routes
	v1.Post("/records/completions", h.IngestCompletions)
	v1.Post("/records/responses", h.IngestResponses)
	v1.Post("/records/statuses", h.IngestStatuses)
	v1.Get("/records/counts", h.RecordCounts)

	// Chart Routes
	v1.Get("/analytics/completion-by-status", h.CompletionByStatus)
	v1.Get("/analytics/vendor-response-times", h.VendorResponseTimes)
	v1.Get("/analytics/completion-timeseries", h.CompletionTimeSeries)
	v1.Get("/analytics/status-timeline", h.StatusTimeline)

	// Insight Routes
	v1.Get("/analytics/completion-trends", h.CompletionTrends)
	v1.Get("/analytics/vendor-scores", h.VendorScores)
	v1.Get("/analytics/bottlenecks", h.Bottlenecks)
	v1.Get("/analytics/anomalies", h.Anomalies)

	// Forecast Routes
	v1.Get("/analytics/forecast", h.Forecast)
	v1.Post("/analytics/forecast", h.ForecastPost)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, recordStore *store.RecordStore, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "BidPulse Analytics",
		DisableStartupMessage: true,
		ReadTimeout:           utils.DefaultRequestTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, recordStore, cfg)

	return app
}
