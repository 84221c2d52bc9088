package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bidpulse/bidpulse/internal/services"
)

// ForecastRequest represents the POST forecast request body
type ForecastRequest struct {
	Method  string `json:"method"`  // forecasting algorithm, default "linear"
	Periods int    `json:"periods"` // history months to fit against
	Horizon int    `json:"horizon"` // months to project forward
}

// Forecast handles GET forecast requests
// GET /v1/analytics/forecast?method=linear&periods=N&horizon=N
func (h *Handler) Forecast(c *fiber.Ctx) error {
	periods, err := strconv.Atoi(c.Query("periods", "0"))
	if err != nil || periods < 0 {
		periods = 0
	}
	horizon, err := strconv.Atoi(c.Query("horizon", "0"))
	if err != nil || horizon < 0 {
		horizon = 0
	}

	return h.executeForecast(c, c.Query("method"), periods, horizon)
}

// ForecastPost handles POST forecast requests
// POST /v1/analytics/forecast
func (h *Handler) ForecastPost(c *fiber.Ctx) error {
	var body ForecastRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c, err)
	}

	return h.executeForecast(c, body.Method, body.Periods, body.Horizon)
}

func (h *Handler) executeForecast(c *fiber.Ctx, method string, periods, horizon int) error {
	result, err := h.forecastService.Execute(c.UserContext(), &services.ForecastRequest{
		Method:  method,
		Periods: periods,
		Horizon: horizon,
	})
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.JSON(result)
}
