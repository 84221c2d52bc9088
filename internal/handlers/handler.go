// Package handlers exposes the analytics engine over HTTP. Handlers parse
// and validate transport concerns, then delegate to the services layer.
package handlers

import (
	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/services"
	"github.com/bidpulse/bidpulse/internal/store"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger *logging.Logger
	store  *store.RecordStore
	// Services
	analyticsService *services.AnalyticsService
	forecastService  *services.ForecastService
}

// New creates a new handler instance
func New(logger *logging.Logger, recordStore *store.RecordStore, cfg config.AnalyticsConfig) *Handler {
	return &Handler{
		logger:           logger,
		store:            recordStore,
		analyticsService: services.NewAnalyticsService(logger, recordStore, cfg),
		forecastService:  services.NewForecastService(logger, recordStore, cfg),
	}
}
