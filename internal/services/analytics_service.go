package services

import (
	"context"
	"time"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/analytics/anomaly"
	"github.com/bidpulse/bidpulse/internal/analytics/charts"
	"github.com/bidpulse/bidpulse/internal/analytics/insights"
	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/store"
)

// AnalyticsService runs the chart aggregations and insight derivations
// over the current record snapshot.
type AnalyticsService struct {
	logger *logging.Logger
	store  *store.RecordStore
	cfg    config.AnalyticsConfig
	colors analytics.ColorMap
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(logger *logging.Logger, recordStore *store.RecordStore, cfg config.AnalyticsConfig) *AnalyticsService {
	statuses := analytics.DefaultStatusColors()
	for _, c := range cfg.StatusColors {
		statuses[c.Status] = c.Hex
	}
	fallback := cfg.FallbackColor
	if fallback == "" {
		fallback = analytics.DefaultFallbackColor
	}

	return &AnalyticsService{
		logger: logger,
		store:  recordStore,
		cfg:    cfg,
		colors: analytics.NewColorMap(statuses, fallback),
	}
}

// CompletionByStatus returns average completion hours grouped by bid status.
func (s *AnalyticsService) CompletionByStatus(ctx context.Context) []analytics.ChartDataPoint {
	points := charts.CompletionByStatus(s.store.Completions(), s.colors)
	logging.FromContext(ctx).Debug("Computed completion-by-status chart", "groups", len(points))
	return points
}

// VendorResponseTimes returns average response hours per vendor, ranked
// fastest first. Vendors below the significance floor are excluded.
func (s *AnalyticsService) VendorResponseTimes(ctx context.Context) []analytics.ChartDataPoint {
	points := charts.VendorResponseTimes(s.store.Responses(), s.cfg.VendorMinRequests)
	logging.FromContext(ctx).Debug("Computed vendor response-time chart", "vendors", len(points))
	return points
}

// CompletionTimeSeries buckets a duration metric into week or month
// intervals. Metric selects the source: "completions" (default) buckets
// completion hours, "responses" buckets vendor response hours.
func (s *AnalyticsService) CompletionTimeSeries(ctx context.Context, interval charts.BucketInterval, metric string) (analytics.TimeSeries, error) {
	if !interval.IsValid() {
		return nil, NewServiceErrorWithDetails("INVALID_INTERVAL",
			"interval must be 'week' or 'month'",
			map[string]interface{}{"interval": string(interval)})
	}

	var obs []charts.Observation
	switch metric {
	case "", "completions":
		obs = charts.CompletionObservations(s.store.Completions())
	case "responses":
		obs = charts.ResponseObservations(s.store.Responses())
	default:
		return nil, NewServiceErrorWithDetails("INVALID_METRIC",
			"metric must be 'completions' or 'responses'",
			map[string]interface{}{"metric": metric})
	}

	series := charts.BuildTimeSeries(obs, interval)
	logging.FromContext(ctx).Debug("Computed time series", "interval", string(interval), "buckets", len(series))
	return series, nil
}

// StatusTimeline returns the per-bid status segments for Gantt rendering.
func (s *AnalyticsService) StatusTimeline(ctx context.Context) []analytics.GanttSegment {
	segments := charts.StatusTimeline(s.store.StatusDurations(), s.colors)
	logging.FromContext(ctx).Debug("Computed status timeline", "segments", len(segments))
	return segments
}

// CompletionTrends derives per-month completion metrics for the configured
// trailing window. A periods argument of 0 uses the configured default.
func (s *AnalyticsService) CompletionTrends(ctx context.Context, periods int) []insights.CompletionTrend {
	if periods <= 0 {
		periods = s.cfg.TrendPeriods
	}
	trends := insights.CompletionTrends(s.store.Completions(), periods, time.Now())
	logging.FromContext(ctx).Debug("Computed completion trends", "periods", periods)
	return trends
}

// VendorScores ranks vendors by the composite performance score.
func (s *AnalyticsService) VendorScores(ctx context.Context) []insights.VendorScore {
	weights := insights.ScoreWeights{
		ResponseRate: s.cfg.ScoreWeights.ResponseRate,
		ResponseTime: s.cfg.ScoreWeights.ResponseTime,
		OnTimeRate:   s.cfg.ScoreWeights.OnTimeRate,
	}
	scores := insights.ScoreVendors(s.store.Responses(), s.cfg.VendorMinRequests, weights)
	logging.FromContext(ctx).Debug("Computed vendor scores", "vendors", len(scores))
	return scores
}

// Anomalies flags months whose completion rate deviates from the rest of
// the trailing window. Method selects the detector; an empty method uses
// automatic selection.
func (s *AnalyticsService) Anomalies(ctx context.Context, method string, periods int) ([]anomaly.Anomaly, error) {
	if method == "" {
		method = "auto"
	}
	detector, err := anomaly.Get(method)
	if err != nil {
		return nil, NewServiceErrorWithDetails("INVALID_METHOD",
			"unknown anomaly detector: "+method,
			map[string]interface{}{"available_methods": anomaly.List()})
	}

	trends := s.CompletionTrends(ctx, periods)
	series := insights.TrendSeries(trends)
	results := detector.Detect(series, anomaly.DefaultConfig())
	logging.FromContext(ctx).Debug("Computed anomalies",
		"method", method, "buckets", len(series), "anomalies", len(results))
	return results, nil
}

// Bottlenecks surfaces process stages where bids stall.
func (s *AnalyticsService) Bottlenecks(ctx context.Context) []insights.Bottleneck {
	thresholds := insights.BottleneckThresholds{
		Medium: s.cfg.BottleneckMedium,
		High:   s.cfg.BottleneckHigh,
	}
	bottlenecks := insights.DetectBottlenecks(s.store.StatusDurations(), thresholds)
	logging.FromContext(ctx).Debug("Computed bottlenecks", "statuses", len(bottlenecks))
	return bottlenecks
}
