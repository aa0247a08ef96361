package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/domain/repositories"
	"wedding-invitation/domain/services"
	"wedding-invitation/pkg/scheduler"
)

// Runner is a background component that reports whether it is running.
type Runner interface {
	IsRunning() bool
}

// ClientCounter reports open websocket connections.
type ClientCounter interface {
	ClientCount() int
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	kvStore        repositories.KVStore
	scheduler      scheduler.EventScheduler
	celebrations   Runner
	clients        ClientCounter
	galleryService services.GalleryService
}

func NewHealthHandler(
	kvStore repositories.KVStore,
	eventScheduler scheduler.EventScheduler,
	celebrations Runner,
	clients ClientCounter,
	galleryService services.GalleryService,
) *HealthHandler {
	return &HealthHandler{
		kvStore:        kvStore,
		scheduler:      eventScheduler,
		celebrations:   celebrations,
		clients:        clients,
		galleryService: galleryService,
	}
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"` // "ok", "error", "unavailable"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// DetailedHealthResponse represents detailed health check response
type DetailedHealthResponse struct {
	Status     string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
	Metrics    HealthMetrics              `json:"metrics"`
}

type HealthMetrics struct {
	WebSocketClients int `json:"websocket_clients"`
	GallerySessions  int `json:"gallery_sessions"`
	ScheduledJobs    int `json:"scheduled_jobs"`
}

// Health is the cheap liveness probe.
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
		"service": "Wedding Invitation",
	})
}

// DetailedHealth checks storage and the background workers. Storage is
// critical; a stopped scheduler or worker only degrades the page.
// @Router /health/detailed [get]
func (h *HealthHandler) DetailedHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	response := DetailedHealthResponse{
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
	}

	storage := h.checkStorage(ctx)
	response.Components["storage"] = storage
	response.Components["scheduler"] = runnerHealth(h.scheduler, "Scheduler")
	response.Components["celebrations"] = runnerHealth(h.celebrations, "Celebration worker")

	allHealthy := true
	for _, comp := range response.Components {
		if comp.Status != "ok" {
			allHealthy = false
		}
	}

	if h.clients != nil {
		response.Metrics.WebSocketClients = h.clients.ClientCount()
	}
	if h.galleryService != nil {
		response.Metrics.GallerySessions = h.galleryService.SessionCount()
	}
	if h.scheduler != nil {
		response.Metrics.ScheduledJobs = len(h.scheduler.ListJobs())
	}

	switch {
	case storage.Status != "ok":
		response.Status = "unhealthy"
	case !allHealthy:
		response.Status = "degraded"
	default:
		response.Status = "healthy"
	}

	statusCode := fiber.StatusOK
	if response.Status == "unhealthy" {
		statusCode = fiber.StatusServiceUnavailable
	}
	return c.Status(statusCode).JSON(response)
}

func (h *HealthHandler) checkStorage(ctx context.Context) ComponentHealth {
	if h.kvStore == nil {
		return ComponentHealth{Status: "error", Message: "Storage not configured"}
	}

	start := time.Now()
	if err := h.kvStore.Ping(ctx); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: h.kvStore.Driver() + " ping failed: " + err.Error(),
		}
	}
	return ComponentHealth{
		Status:  "ok",
		Message: h.kvStore.Driver(),
		Latency: time.Since(start).String(),
	}
}

func runnerHealth(r Runner, name string) ComponentHealth {
	if r == nil {
		return ComponentHealth{Status: "unavailable", Message: name + " not configured"}
	}
	if !r.IsRunning() {
		return ComponentHealth{Status: "error", Message: name + " stopped"}
	}
	return ComponentHealth{Status: "ok", Message: "Running"}
}
