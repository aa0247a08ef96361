package routes

import (
	"github.com/gofiber/fiber/v2"

	"wedding-invitation/interfaces/api/handlers"
	"wedding-invitation/interfaces/api/middleware"
	"wedding-invitation/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	SetupHealthRoutes(app, h)
	SetupStaticRoutes(app, cfg)

	// Everything below knows which guest it is talking to
	app.Use(middleware.Guest())

	SetupPageRoutes(app, h, &cfg.RateLimit)

	api := app.Group("/api/v1", middleware.RateLimiter(&cfg.RateLimit))
	SetupGalleryRoutes(api, h)
	SetupRSVPRoutes(api, h, &cfg.RateLimit)
	SetupWeddingRoutes(api, h)
	SetupLogRoutes(api, h, cfg.App.AdminToken)

	SetupWebSocketRoutes(app, h)
}
