package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	GuestCookie = "guest_id"
	GuestLocal  = "guest_id" // Locals key, also readable from a websocket.Conn
	guestMaxAge = 90 * 24 * time.Hour
)

// Guest identifies the browser with a long-lived cookie so gallery state
// and the RSVP confirmation follow it between requests. A missing or
// malformed cookie is replaced with a fresh id.
func Guest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(GuestCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     GuestCookie,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(guestMaxAge),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(GuestLocal, id)
		return c.Next()
	}
}

// GuestID returns the id set by Guest, or "" outside it.
func GuestID(c *fiber.Ctx) string {
	id, _ := c.Locals(GuestLocal).(string)
	return id
}
