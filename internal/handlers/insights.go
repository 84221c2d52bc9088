package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bidpulse/bidpulse/internal/analytics/anomaly"
	"github.com/bidpulse/bidpulse/internal/analytics/insights"
)

// TrendsResponse wraps completion trends
type TrendsResponse struct {
	Trends []insights.CompletionTrend `json:"trends"`
	Count  int                        `json:"count"`
}

// ScoresResponse wraps vendor performance scores
type ScoresResponse struct {
	Scores []insights.VendorScore `json:"scores"`
	Count  int                    `json:"count"`
}

// BottlenecksResponse wraps bottleneck findings
type BottlenecksResponse struct {
	Bottlenecks []insights.Bottleneck `json:"bottlenecks"`
	Count       int                   `json:"count"`
}

// AnomaliesResponse wraps detected duration anomalies
type AnomaliesResponse struct {
	Method    string            `json:"method"`
	Anomalies []anomaly.Anomaly `json:"anomalies"`
	Count     int               `json:"count"`
}

// CompletionTrends returns per-month completion metrics
// GET /v1/analytics/completion-trends?periods=N
func (h *Handler) CompletionTrends(c *fiber.Ctx) error {
	periods, err := strconv.Atoi(c.Query("periods", "0"))
	if err != nil || periods < 0 {
		periods = 0
	}

	trends := h.analyticsService.CompletionTrends(c.UserContext(), periods)
	return c.JSON(TrendsResponse{Trends: trends, Count: len(trends)})
}

// VendorScores returns ranked vendor performance scores
// GET /v1/analytics/vendor-scores
func (h *Handler) VendorScores(c *fiber.Ctx) error {
	scores := h.analyticsService.VendorScores(c.UserContext())
	return c.JSON(ScoresResponse{Scores: scores, Count: len(scores)})
}

// Bottlenecks returns process stages where bids stall
// GET /v1/analytics/bottlenecks
func (h *Handler) Bottlenecks(c *fiber.Ctx) error {
	bottlenecks := h.analyticsService.Bottlenecks(c.UserContext())
	return c.JSON(BottlenecksResponse{Bottlenecks: bottlenecks, Count: len(bottlenecks)})
}

// Anomalies returns months with unusual completion rates
// GET /v1/analytics/anomalies?method=auto|zscore|iqr&periods=N
func (h *Handler) Anomalies(c *fiber.Ctx) error {
	periods, err := strconv.Atoi(c.Query("periods", "0"))
	if err != nil || periods < 0 {
		periods = 0
	}
	method := c.Query("method", "auto")

	anomalies, svcErr := h.analyticsService.Anomalies(c.UserContext(), method, periods)
	if svcErr != nil {
		return serviceErrorResponse(c, svcErr)
	}

	return c.JSON(AnomaliesResponse{Method: method, Anomalies: anomalies, Count: len(anomalies)})
}
