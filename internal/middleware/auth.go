// Package middleware holds the fiber middlewares shared across the
// analytics API: static API-key authentication and the error envelope.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/models"
)

// MinAPIKeyLength is the shortest key the middleware will accept into its
// key set. Shorter keys are guessable and almost always a paste error.
const MinAPIKeyLength = 32

// ValidateAPIKey reports whether a configured key is usable.
func ValidateAPIKey(key string) bool {
	return len(key) >= MinAPIKeyLength && strings.TrimSpace(key) != ""
}

// APIKeyAuth guards the analytics routes with a static key set. Clients
// send the key via X-API-Key or an Authorization header (with or without
// the Bearer prefix). With auth disabled every request passes through.
func APIKeyAuth(logger *logging.Logger, cfg config.AuthConfig) fiber.Handler {
	if !cfg.Enabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	keys := make(map[string]struct{}, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if key == "" {
			continue
		}
		if !ValidateAPIKey(key) {
			logger.Warn("Ignoring API key below minimum length",
				"key_length", len(key),
				"min_length", MinAPIKeyLength,
				"key_prefix", maskAPIKey(key))
			continue
		}
		keys[key] = struct{}{}
	}

	if len(keys) == 0 {
		logger.Error("Authentication enabled but no usable API keys configured",
			"configured_keys", len(cfg.APIKeys))
	}

	return func(c *fiber.Ctx) error {
		key := requestAPIKey(c)
		if key == "" {
			logger.Warn("Request without API key",
				"path", c.Path(), "method", c.Method(), "ip", c.IP())
			return unauthorized(c, "API key is required via X-API-Key or Authorization header")
		}

		if _, ok := keys[key]; !ok {
			logger.Warn("Rejected API key",
				"path", c.Path(),
				"method", c.Method(),
				"ip", c.IP(),
				"key_prefix", maskAPIKey(key))
			return unauthorized(c, "Invalid API key")
		}

		return c.Next()
	}
}

// requestAPIKey pulls the key from the request headers. X-API-Key wins;
// otherwise the Authorization header is used, Bearer-prefixed or bare.
func requestAPIKey(c *fiber.Ctx) string {
	if key := c.Get("X-API-Key"); key != "" {
		return key
	}

	auth := c.Get("Authorization")
	if bearer, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return bearer
	}
	return auth
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "UNAUTHORIZED",
			Message: message,
		},
	})
}

// maskAPIKey keeps only the first four characters for log output.
func maskAPIKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
