package routes

import (
	"github.com/gofiber/fiber/v2"

	"wedding-invitation/interfaces/api/handlers"
	"wedding-invitation/interfaces/api/middleware"
	"wedding-invitation/pkg/config"
)

func SetupGalleryRoutes(api fiber.Router, h *handlers.Handlers) {
	g := api.Group("/gallery")
	g.Get("/", h.Gallery.GetState)
	g.Post("/category", h.Gallery.SelectCategory)
	g.Post("/expand", h.Gallery.ToggleExpand)
	g.Post("/open", h.Gallery.Open)
	g.Post("/close", h.Gallery.Close)
	g.Post("/navigate", h.Gallery.Navigate)
}

func SetupRSVPRoutes(api fiber.Router, h *handlers.Handlers, rl *config.RateLimitConfig) {
	api.Post("/rsvp", middleware.RSVPRateLimiter(rl), h.RSVP.Submit)
	api.Get("/rsvp/status", h.RSVP.GetStatus)
	api.Get("/wishes", h.RSVP.GetWishes)
}

func SetupWeddingRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Get("/details", h.Wedding.GetDetails)
	api.Get("/countdown", h.Wedding.GetCountdown)
	api.Get("/gifts/:id/qr.png", h.Wedding.GetGiftQR)
}
