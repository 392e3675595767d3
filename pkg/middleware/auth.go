package middleware

import (
	"strings"

	"course-recommender/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			logger.Warn("Missing authorization token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a valid token is present
// and lets anonymous requests through otherwise.
func OptionalAuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Debug("Ignoring invalid token on optional route", zap.Error(err))
			return c.Next()
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	token := strings.TrimSpace(c.Get("Authorization"))

	// Remove "Bearer " prefix if present
	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

func storeClaims(c *fiber.Ctx, claims *auth.Claims) {
	c.Locals("userID", claims.UserID)
}
