package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/pkg/utils"
)

// AdminOnly checks the X-Admin-Token header or the token query parameter.
// An empty configured token rejects every request.
func AdminOnly(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		given := c.Get("X-Admin-Token")
		if given == "" {
			given = c.Query("token")
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid admin token", nil)
		}
		return c.Next()
	}
}
