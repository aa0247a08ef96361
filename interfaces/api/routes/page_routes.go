package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"wedding-invitation/interfaces/api/handlers"
	"wedding-invitation/interfaces/api/middleware"
	"wedding-invitation/interfaces/web"
	"wedding-invitation/pkg/config"
)

// SetupStaticRoutes serves the embedded stylesheet and script and the
// photo, map and music folders under ASSETS_DIR.
func SetupStaticRoutes(app *fiber.App, cfg *config.Config) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.StaticFS()),
		MaxAge: 3600,
	}))

	static := fiber.Static{Compress: true, MaxAge: 86400}
	app.Static("/images/thumbnails", filepath.Join(cfg.Assets.Dir, cfg.Assets.ThumbDir), static)
	app.Static("/images/large", filepath.Join(cfg.Assets.Dir, cfg.Assets.LargeDir), static)
	app.Static("/maps", filepath.Join(cfg.Assets.Dir, "maps"), static)
	app.Static("/music", filepath.Join(cfg.Assets.Dir, "music"), fiber.Static{ByteRange: true, MaxAge: 86400})
}

// SetupPageRoutes backs the rendered page's links and forms.
func SetupPageRoutes(app *fiber.App, h *handlers.Handlers, rl *config.RateLimitConfig) {
	app.Get("/", h.Page.Index)
	app.Post("/rsvp", middleware.RSVPRateLimiter(rl), h.Page.SubmitRSVP)

	g := app.Group("/gallery")
	g.Post("/category/:category", h.Gallery.SelectCategoryForm)
	g.Post("/expand", h.Gallery.ToggleExpandForm)
	g.Get("/photos/:id", h.Gallery.OpenForm)
	g.Post("/close", h.Gallery.CloseForm)
	g.Post("/navigate/:direction", h.Gallery.NavigateForm)
}
