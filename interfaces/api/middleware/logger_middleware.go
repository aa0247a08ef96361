package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/domain/services"
	"wedding-invitation/pkg/logger"
)

// LoggerMiddleware writes one api log line per request.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			var verr *services.ValidationError
			switch {
			case errors.As(err, &fe):
				status = fe.Code
			case errors.As(err, &verr):
				status = fiber.StatusBadRequest
			}
		}

		logger.API("request", c.Method()+" "+c.Path(), map[string]interface{}{
			"status":   status,
			"latency":  time.Since(start).String(),
			"ip":       c.IP(),
			"guest_id": GuestID(c),
		})
		return err
	}
}
