package middleware

import (
	"context"
	"strings"

	"forumapi/internal/security"

	"github.com/gofiber/fiber/v2"
)

// AccessTokenVerifier validates an access token and returns its identity.
type AccessTokenVerifier interface {
	VerifyAccessToken(token string) (*security.TokenPayload, error)
}

// AuthRequired enforces a valid "Bearer <access token>" header. On success the
// user ID is stored in c.Locals("userID") and in the user context.
func AuthRequired(v AccessTokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}

		payload, err := v.VerifyAccessToken(parts[1])
		if err != nil {
			return unauthorized(c)
		}

		c.Locals("userID", payload.ID)
		c.Locals("username", payload.Username)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, payload.ID))
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  "fail",
		"message": "Missing authentication",
	})
}
