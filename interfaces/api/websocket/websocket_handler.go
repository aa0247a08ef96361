package websocket

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/services"
	websocketManager "wedding-invitation/infrastructure/websocket"
	"wedding-invitation/interfaces/api/middleware"
	"wedding-invitation/pkg/logger"
)

// Inbound message types from the page script, and their replies.
const (
	MessageSection       = "section"
	MessageScroll        = "scroll"
	MessageActiveSection = "active_section"
	MessageScrolled      = "scrolled"
)

type WebSocketHandler struct {
	manager        *websocketManager.WebSocketManager
	galleryService services.GalleryService
}

// NewWebSocketHandler registers the scroll spy messages on manager.
func NewWebSocketHandler(manager *websocketManager.WebSocketManager, galleryService services.GalleryService) *WebSocketHandler {
	h := &WebSocketHandler{
		manager:        manager,
		galleryService: galleryService,
	}
	manager.On(MessageSection, h.onSection)
	manager.On(MessageScroll, h.onScroll)
	return h
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	guestID, _ := c.Locals(middleware.GuestLocal).(string)
	rooms := strings.Split(c.Query("room", ""), ",")

	h.manager.RegisterClient(c, guestID, rooms...)
	defer h.manager.UnregisterClient(c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WebSocketError("read_message", "WebSocket read error", err, map[string]interface{}{"guest_id": guestID})
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		h.manager.HandleWebSocketMessage(c, message)
	}
}

func (h *WebSocketHandler) onSection(client *websocketManager.Client, data json.RawMessage) {
	var req dto.SectionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		client.Send("error", map[string]string{"message": "invalid section"})
		return
	}
	if h.galleryService.ActivateSection(client.GuestID, req.Section) {
		client.Send(MessageActiveSection, h.galleryService.ActiveSection(client.GuestID))
	}
}

func (h *WebSocketHandler) onScroll(client *websocketManager.Client, data json.RawMessage) {
	var req dto.ScrollRequest
	if err := json.Unmarshal(data, &req); err != nil {
		client.Send("error", map[string]string{"message": "invalid scroll"})
		return
	}
	client.Send(MessageScrolled, h.galleryService.ObserveScroll(client.GuestID, req.OffsetY))
}
