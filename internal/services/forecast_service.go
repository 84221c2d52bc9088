package services

import (
	"context"
	"time"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/analytics/forecast"
	"github.com/bidpulse/bidpulse/internal/analytics/insights"
	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/store"
)

// ForecastService projects the monthly completion rate forward.
type ForecastService struct {
	logger *logging.Logger
	store  *store.RecordStore
	cfg    config.AnalyticsConfig
}

// NewForecastService creates a new ForecastService
func NewForecastService(logger *logging.Logger, recordStore *store.RecordStore, cfg config.AnalyticsConfig) *ForecastService {
	return &ForecastService{
		logger: logger,
		store:  recordStore,
		cfg:    cfg,
	}
}

// ForecastRequest represents a forecast request
type ForecastRequest struct {
	Method  string // forecasting algorithm, default "linear"
	Periods int    // history months to fit against; 0 uses the configured default
	Horizon int    // months to project; 0 uses the configured default
}

// ForecastResponse carries the fitted history and the projection.
type ForecastResponse struct {
	Method     string               `json:"method"`
	History    analytics.TimeSeries `json:"history"`
	Projection analytics.TimeSeries `json:"projection"`
}

// Execute derives the monthly completion-rate series and runs the chosen
// forecaster over it. Too little history yields an empty projection, not
// an error.
func (s *ForecastService) Execute(ctx context.Context, req *ForecastRequest) (*ForecastResponse, error) {
	startExec := time.Now()

	method := req.Method
	if method == "" {
		method = "linear"
	}

	forecaster, err := forecast.Get(method)
	if err != nil {
		return nil, NewServiceErrorWithDetails("INVALID_METHOD", err.Error(),
			map[string]interface{}{"available_methods": forecast.List()})
	}

	periods := req.Periods
	if periods <= 0 {
		periods = s.cfg.TrendPeriods
	}

	fcfg := forecast.DefaultConfig()
	if req.Horizon > 0 {
		fcfg.Horizon = req.Horizon
	} else if s.cfg.ForecastHorizon > 0 {
		fcfg.Horizon = s.cfg.ForecastHorizon
	}

	trends := insights.CompletionTrends(s.store.Completions(), periods, time.Now())
	history := insights.TrendSeries(trends)

	projection, err := forecaster.Forecast(history, fcfg)
	if err != nil {
		return nil, NewServiceErrorWithDetails("FORECAST_FAILED", err.Error(), nil)
	}

	s.logger.Info("Forecast completed",
		"method", method,
		"periods", periods,
		"horizon", fcfg.Horizon,
		"projected_points", len(projection),
		"latency_ms", time.Since(startExec).Milliseconds())

	return &ForecastResponse{
		Method:     method,
		History:    history,
		Projection: projection,
	}, nil
}
