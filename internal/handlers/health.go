package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bidpulse/bidpulse/internal/models"
)

const serviceVersion = "1.0.0"

// Health reports liveness plus the size of the loaded dataset, so probes
// can tell an empty node from a warmed-up one.
// GET /health
func (h *Handler) Health(c *fiber.Ctx) error {
	completions, responses, statuses := h.store.Counts()

	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Service:   "bidpulse-analytics",
		Version:   serviceVersion,
		Timestamp: time.Now().Format(time.RFC3339),
		Records: models.RecordCountsResponse{
			Completions:     completions,
			Responses:       responses,
			StatusDurations: statuses,
		},
	})
}

// NotFound answers any route no handler claimed.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "NOT_FOUND",
			Message: "Route not found",
			Path:    c.Path(),
		},
	})
}
