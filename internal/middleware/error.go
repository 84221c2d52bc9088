package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/models"
)

// ErrorHandler converts errors escaping the handlers into the API's error
// envelope. Fiber errors keep their status code; anything else becomes a
// plain 500 so internal detail never leaks to clients.
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		}

		logger.Error("Unhandled request error",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"error", err)

		return c.Status(status).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ERROR",
				Message: message,
				Path:    c.Path(),
			},
		})
	}
}
