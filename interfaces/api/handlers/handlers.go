package handlers

import (
	"time"

	"wedding-invitation/domain/repositories"
	"wedding-invitation/domain/services"
	websocketManager "wedding-invitation/infrastructure/websocket"
	websocketHandler "wedding-invitation/interfaces/api/websocket"
	"wedding-invitation/interfaces/web"
	"wedding-invitation/pkg/scheduler"
)

// Services contains all the services needed for handlers
type Services struct {
	GalleryService services.GalleryService
	RSVPService    services.RSVPService
	WeddingService services.WeddingService

	// RSVPConfirmationDelay is echoed to the page so it can show the
	// confirmation without the websocket.
	RSVPConfirmationDelay time.Duration
}

// Infrastructure is the runtime state handlers attach to or report on.
type Infrastructure struct {
	KVStore      repositories.KVStore
	Scheduler    scheduler.EventScheduler
	Celebrations Runner
	WebSocket    *websocketManager.WebSocketManager
}

// Handlers contains all HTTP handlers
type Handlers struct {
	PageHandler    *PageHandler
	GalleryHandler *GalleryHandler
	RSVPHandler    *RSVPHandler
	WeddingHandler *WeddingHandler
	HealthHandler  *HealthHandler
	LogHandler     *LogHandler
	WebSocket      *websocketHandler.WebSocketHandler

	// Short accessors for routes
	Page    *PageHandler
	Gallery *GalleryHandler
	RSVP    *RSVPHandler
	Wedding *WeddingHandler
	Health  *HealthHandler
	Log     *LogHandler
}

func NewHandlers(services *Services, infra *Infrastructure, renderer *web.Renderer) *Handlers {
	pageHandler := NewPageHandler(renderer, services.GalleryService, services.RSVPService, services.WeddingService)
	galleryHandler := NewGalleryHandler(services.GalleryService)
	rsvpHandler := NewRSVPHandler(services.RSVPService, services.RSVPConfirmationDelay)
	weddingHandler := NewWeddingHandler(services.WeddingService)
	healthHandler := NewHealthHandler(infra.KVStore, infra.Scheduler, infra.Celebrations, infra.WebSocket, services.GalleryService)
	logHandler := NewLogHandler()
	wsHandler := websocketHandler.NewWebSocketHandler(infra.WebSocket, services.GalleryService)

	return &Handlers{
		PageHandler:    pageHandler,
		GalleryHandler: galleryHandler,
		RSVPHandler:    rsvpHandler,
		WeddingHandler: weddingHandler,
		HealthHandler:  healthHandler,
		LogHandler:     logHandler,
		WebSocket:      wsHandler,

		// Short accessors
		Page:    pageHandler,
		Gallery: galleryHandler,
		RSVP:    rsvpHandler,
		Wedding: weddingHandler,
		Health:  healthHandler,
		Log:     logHandler,
	}
}
