package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"wedding-invitation/pkg/logger"
)

// Rooms a client may join with ?room=.
const (
	RoomCountdown = "countdown"
	RoomWishes    = "wishes"
)

// Conn is the part of a websocket connection the manager writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Message is the envelope for everything sent or received.
type Message struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type outbound struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Client is one open connection.
type Client struct {
	ID      uuid.UUID
	GuestID string
	Rooms   map[string]bool

	conn Conn
	mu   sync.Mutex
}

// Send writes one message to this client only.
func (c *Client) Send(messageType string, data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(outbound{Type: messageType, Data: data, Timestamp: time.Now()})
}

// HandlerFunc reacts to one inbound message type.
type HandlerFunc func(client *Client, data json.RawMessage)

// WebSocketManager tracks open clients by connection and by guest.
type WebSocketManager struct {
	mu       sync.RWMutex
	clients  map[Conn]*Client
	byGuest  map[string]map[*Client]bool
	handlers map[string]HandlerFunc
}

// Manager is the process-wide hub.
var Manager = NewManager()

func NewManager() *WebSocketManager {
	return &WebSocketManager{
		clients:  make(map[Conn]*Client),
		byGuest:  make(map[string]map[*Client]bool),
		handlers: make(map[string]HandlerFunc),
	}
}

// On registers the handler for an inbound message type.
func (m *WebSocketManager) On(messageType string, h HandlerFunc) {
	m.mu.Lock()
	m.handlers[messageType] = h
	m.mu.Unlock()
}

// RegisterClient adds a connection for guestID, joined to the given rooms.
func (m *WebSocketManager) RegisterClient(conn Conn, guestID string, rooms ...string) *Client {
	client := &Client{
		ID:      uuid.New(),
		GuestID: guestID,
		Rooms:   make(map[string]bool),
		conn:    conn,
	}
	for _, r := range rooms {
		if r != "" {
			client.Rooms[r] = true
		}
	}

	m.mu.Lock()
	m.clients[conn] = client
	if m.byGuest[guestID] == nil {
		m.byGuest[guestID] = make(map[*Client]bool)
	}
	m.byGuest[guestID][client] = true
	total := len(m.clients)
	m.mu.Unlock()

	logger.WebSocket("client_registered", "Client registered", map[string]interface{}{
		"client_id": client.ID.String(),
		"guest_id":  guestID,
		"clients":   total,
	})
	return client
}

func (m *WebSocketManager) UnregisterClient(conn Conn) {
	m.mu.Lock()
	client, ok := m.clients[conn]
	if ok {
		delete(m.clients, conn)
		if set := m.byGuest[client.GuestID]; set != nil {
			delete(set, client)
			if len(set) == 0 {
				delete(m.byGuest, client.GuestID)
			}
		}
	}
	m.mu.Unlock()

	if ok {
		conn.Close()
		logger.WebSocket("client_unregistered", "Client unregistered", map[string]interface{}{
			"client_id": client.ID.String(),
			"guest_id":  client.GuestID,
		})
	}
}

// ClientCount is the number of open connections.
func (m *WebSocketManager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// HasGuest reports whether guestID has at least one open connection.
func (m *WebSocketManager) HasGuest(guestID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byGuest[guestID]) > 0
}

func (m *WebSocketManager) snapshot(match func(*Client) bool) []*Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

func (m *WebSocketManager) sendAll(clients []*Client, messageType string, data interface{}) int {
	sent := 0
	for _, c := range clients {
		if err := c.Send(messageType, data); err != nil {
			logger.WebSocketError("send_failed", "Failed to send message", err, map[string]interface{}{
				"client_id": c.ID.String(),
				"type":      messageType,
			})
			continue
		}
		sent++
	}
	return sent
}

// BroadcastToUser sends to every connection of one guest.
func (m *WebSocketManager) BroadcastToUser(guestID string, messageType string, data interface{}) int {
	return m.sendAll(m.snapshot(func(c *Client) bool { return c.GuestID == guestID }), messageType, data)
}

// BroadcastToRoom sends to every client that joined room.
func (m *WebSocketManager) BroadcastToRoom(room string, messageType string, data interface{}) int {
	return m.sendAll(m.snapshot(func(c *Client) bool { return c.Rooms[room] }), messageType, data)
}

// Broadcast sends to every client.
func (m *WebSocketManager) Broadcast(messageType string, data interface{}) int {
	return m.sendAll(m.snapshot(func(*Client) bool { return true }), messageType, data)
}

// HandleWebSocketMessage decodes an inbound text frame and dispatches it.
func (m *WebSocketManager) HandleWebSocketMessage(conn Conn, payload []byte) {
	m.mu.RLock()
	client := m.clients[conn]
	m.mu.RUnlock()
	if client == nil {
		return
	}

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		client.Send("error", map[string]string{"message": "invalid message"})
		return
	}

	switch msg.Type {
	case "ping":
		client.Send("pong", nil)
		return
	case "join":
		var room string
		if json.Unmarshal(msg.Data, &room) == nil && room != "" {
			m.mu.Lock()
			client.Rooms[room] = true
			m.mu.Unlock()
		}
		return
	}

	m.mu.RLock()
	h := m.handlers[msg.Type]
	m.mu.RUnlock()
	if h == nil {
		client.Send("error", map[string]string{"message": "unknown message type: " + msg.Type})
		return
	}
	h(client, msg.Data)
}
