package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/analytics/charts"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/services"
)

// ChartResponse wraps bar/pie chart data points
type ChartResponse struct {
	Points []analytics.ChartDataPoint `json:"points"`
	Count  int                        `json:"count"`
}

// TimeSeriesResponse wraps time-series data points
type TimeSeriesResponse struct {
	Interval string               `json:"interval"`
	Metric   string               `json:"metric"`
	Series   analytics.TimeSeries `json:"series"`
	Count    int                  `json:"count"`
}

// TimelineResponse wraps Gantt segments
type TimelineResponse struct {
	Segments []analytics.GanttSegment `json:"segments"`
	Count    int                      `json:"count"`
}

// CompletionByStatus returns average completion hours grouped by status
// GET /v1/analytics/completion-by-status
func (h *Handler) CompletionByStatus(c *fiber.Ctx) error {
	points := h.analyticsService.CompletionByStatus(c.UserContext())
	return c.JSON(ChartResponse{Points: points, Count: len(points)})
}

// VendorResponseTimes returns average response hours per ranked vendor
// GET /v1/analytics/vendor-response-times
func (h *Handler) VendorResponseTimes(c *fiber.Ctx) error {
	points := h.analyticsService.VendorResponseTimes(c.UserContext())
	return c.JSON(ChartResponse{Points: points, Count: len(points)})
}

// CompletionTimeSeries returns bucketed duration series
// GET /v1/analytics/completion-timeseries?interval=week|month&metric=completions|responses
func (h *Handler) CompletionTimeSeries(c *fiber.Ctx) error {
	interval := charts.BucketInterval(c.Query("interval", string(charts.BucketMonth)))
	metric := c.Query("metric", "completions")

	series, err := h.analyticsService.CompletionTimeSeries(c.UserContext(), interval, metric)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.JSON(TimeSeriesResponse{
		Interval: string(interval),
		Metric:   metric,
		Series:   series,
		Count:    len(series),
	})
}

// StatusTimeline returns per-bid status segments for Gantt rendering
// GET /v1/analytics/status-timeline
func (h *Handler) StatusTimeline(c *fiber.Ctx) error {
	segments := h.analyticsService.StatusTimeline(c.UserContext())
	return c.JSON(TimelineResponse{Segments: segments, Count: len(segments)})
}

// serviceErrorResponse maps a services error to an HTTP error payload.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	if svcErr, ok := err.(*services.ServiceError); ok {
		status := fiber.StatusInternalServerError
		switch svcErr.Code {
		case "INVALID_INTERVAL", "INVALID_METRIC", "INVALID_METHOD", "INVALID_REQUEST":
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    svcErr.Code,
				Message: svcErr.Message,
				Details: svcErr.Details,
			},
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INTERNAL",
			Message: err.Error(),
		},
	})
}
