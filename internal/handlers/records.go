package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// IngestCompletions handles batch loads of bid completion records
// POST /v1/records/completions
func (h *Handler) IngestCompletions(c *fiber.Ctx) error {
	var body models.IngestCompletionsRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c, err)
	}
	if status, resp := validateBatchSize(len(body.Records)); resp != nil {
		return c.Status(status).JSON(resp)
	}

	h.store.AddCompletions(body.Records...)
	return acceptRecords(c, len(body.Records))
}

// IngestResponses handles batch loads of vendor response records
// POST /v1/records/responses
func (h *Handler) IngestResponses(c *fiber.Ctx) error {
	var body models.IngestResponsesRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c, err)
	}
	if status, resp := validateBatchSize(len(body.Records)); resp != nil {
		return c.Status(status).JSON(resp)
	}

	h.store.AddResponses(body.Records...)
	return acceptRecords(c, len(body.Records))
}

// IngestStatuses handles batch loads of status transition records
// POST /v1/records/statuses
func (h *Handler) IngestStatuses(c *fiber.Ctx) error {
	var body models.IngestStatusesRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c, err)
	}
	if status, resp := validateBatchSize(len(body.Records)); resp != nil {
		return c.Status(status).JSON(resp)
	}

	h.store.AddStatusDurations(body.Records...)
	return acceptRecords(c, len(body.Records))
}

// RecordCounts reports how many records each family holds
// GET /v1/records/counts
func (h *Handler) RecordCounts(c *fiber.Ctx) error {
	completions, responses, statuses := h.store.Counts()
	return c.JSON(models.RecordCountsResponse{
		Completions:     completions,
		Responses:       responses,
		StatusDurations: statuses,
	})
}

func invalidJSON(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_JSON",
			Message: "Failed to parse JSON body",
			Details: map[string]interface{}{"error": err.Error()},
		},
	})
}

func validateBatchSize(n int) (int, *models.ErrorResponse) {
	if n == 0 {
		return fiber.StatusBadRequest, &models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EMPTY_BATCH",
				Message: "records must contain at least one entry",
			},
		}
	}
	if n > utils.MaxBatchSize {
		return fiber.StatusRequestEntityTooLarge, &models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "BATCH_TOO_LARGE",
				Message: "batch exceeds the maximum size",
				Details: map[string]interface{}{"max": utils.MaxBatchSize, "got": n},
			},
		}
	}
	return 0, nil
}

func acceptRecords(c *fiber.Ctx, n int) error {
	return c.Status(fiber.StatusAccepted).JSON(models.IngestResponse{
		Accepted:  n,
		RequestID: uuid.New().String(),
	})
}
