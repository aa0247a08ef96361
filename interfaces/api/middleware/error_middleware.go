package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/domain/services"
	"wedding-invitation/pkg/logger"
	"wedding-invitation/pkg/utils"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return utils.ValidationErrorResponse(c, verr.Fields)
		}

		code := fiber.StatusInternalServerError
		message := "An error occurred"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error(logger.CategoryAPI, "error_handler", "Request error occurred", err, map[string]interface{}{"status_code": code, "path": c.Path(), "method": c.Method()})
		}

		return utils.ErrorResponse(c, code, message, err)
	}
}
