package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/models"
)

func errorApp(handlerErr error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(logging.NewDevelopment()),
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return handlerErr
	})
	return app
}

func TestErrorHandler_KeepsFiberStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", fiber.ErrNotFound, fiber.StatusNotFound, "Not Found"},
		{"unauthorized", fiber.ErrUnauthorized, fiber.StatusUnauthorized, "Unauthorized"},
		{"custom fiber error", fiber.NewError(fiber.StatusConflict, "already loaded"),
			fiber.StatusConflict, "already loaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := errorApp(tt.err)

			req := httptest.NewRequest("GET", "/boom", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to perform request: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			raw, _ := io.ReadAll(resp.Body)
			var errResp models.ErrorResponse
			if err := json.Unmarshal(raw, &errResp); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if errResp.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", errResp.Error.Message, tt.wantMsg)
			}
			if errResp.Error.Code != "ERROR" {
				t.Errorf("code = %q, want ERROR", errResp.Error.Code)
			}
			if errResp.Error.Path != "/boom" {
				t.Errorf("path = %q, want /boom", errResp.Error.Path)
			}
		})
	}
}

func TestErrorHandler_GenericErrorBecomes500(t *testing.T) {
	app := errorApp(errors.New("snapshot torn"))

	req := httptest.NewRequest("GET", "/boom", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var errResp models.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	// The original error text must not reach the client.
	if errResp.Error.Message != "Internal Server Error" {
		t.Errorf("message = %q, want Internal Server Error", errResp.Error.Message)
	}
}
