package routes

import (
	"github.com/gofiber/fiber/v2"

	"wedding-invitation/interfaces/api/handlers"
	"wedding-invitation/interfaces/api/middleware"
)

// SetupLogRoutes mounts the couple's admin endpoints. Without a configured
// token they are not mounted at all.
func SetupLogRoutes(router fiber.Router, h *handlers.Handlers, adminToken string) {
	if adminToken == "" {
		return
	}

	admin := router.Group("/admin", middleware.AdminOnly(adminToken))
	admin.Get("/logs", h.Log.GetLogs)
	admin.Get("/logs/stats", h.Log.GetLogStats)
	admin.Get("/rsvps", h.RSVP.ListRSVPs)
}
