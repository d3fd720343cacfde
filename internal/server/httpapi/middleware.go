package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sergiomezzz/mi-api-juegos2/internal/server/auth"
)

const userIDKey = "userID"

// requireAuth extracts the bearer token from the Authorization header,
// verifies it, and stores the resolved user identifier in the request locals.
// The token alone is the proof of identity: no store lookup happens here.
// Clients always see the same "invalid token" message regardless of why
// verification failed; the concrete kind is only logged.
func (s *HTTPServer) requireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}

		token := header
		if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
			token = strings.TrimSpace(header[7:])
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(c.UserContext(), "token rejected", "reason", err.Error())
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func authenticatedUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}
