package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/services"
	"wedding-invitation/interfaces/api/middleware"
	"wedding-invitation/pkg/utils"
)

type RSVPHandler struct {
	rsvpService       services.RSVPService
	confirmationDelay time.Duration
}

func NewRSVPHandler(rsvpService services.RSVPService, confirmationDelay time.Duration) *RSVPHandler {
	return &RSVPHandler{
		rsvpService:       rsvpService,
		confirmationDelay: confirmationDelay,
	}
}

// Submit stores a reply. Validation failures reach the error middleware
// as *services.ValidationError and come back as 400 with field messages.
// @Router /api/v1/rsvp [post]
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	var req dto.RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	record, err := h.rsvpService.Submit(c.UserContext(), middleware.GuestID(c), &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, "RSVP received", dto.RSVPSubmitResponse{
		RSVP:                dto.RSVPRecordToResponse(*record),
		ConfirmationDelayMs: h.confirmationDelay.Milliseconds(),
	})
}

// GetWishes
// @Router /api/v1/wishes [get]
func (h *RSVPHandler) GetWishes(c *fiber.Ctx) error {
	wishes, err := h.rsvpService.Wishes(c.UserContext())
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, "Wishes retrieved", dto.WishesResponse{Wishes: wishes, Total: len(wishes)})
}

// ListRSVPs is the couple's guest list.
// @Router /api/v1/admin/rsvps [get]
func (h *RSVPHandler) ListRSVPs(c *fiber.Ctx) error {
	records, err := h.rsvpService.ListRSVPs(c.UserContext())
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, "RSVPs retrieved", dto.RSVPRecordsToListResponse(records))
}

// GetStatus tells a reloaded page whether to show the form.
// @Router /api/v1/rsvp/status [get]
func (h *RSVPHandler) GetStatus(c *fiber.Ctx) error {
	guestID := middleware.GuestID(c)
	return utils.SuccessResponse(c, "RSVP status", fiber.Map{
		"replied":   h.rsvpService.HasReplied(guestID),
		"submitted": h.rsvpService.IsSubmitted(guestID),
	})
}
