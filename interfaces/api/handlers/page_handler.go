package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/navigation"
	"wedding-invitation/domain/services"
	"wedding-invitation/interfaces/api/middleware"
	"wedding-invitation/interfaces/web"
	"wedding-invitation/pkg/logger"
)

const rsvpAnchor = "/#rsvp"

// PageHandler renders the invitation for browsers without the API script.
type PageHandler struct {
	renderer       *web.Renderer
	galleryService services.GalleryService
	rsvpService    services.RSVPService
	weddingService services.WeddingService
	now            func() time.Time
}

func NewPageHandler(
	renderer *web.Renderer,
	galleryService services.GalleryService,
	rsvpService services.RSVPService,
	weddingService services.WeddingService,
) *PageHandler {
	return &PageHandler{
		renderer:       renderer,
		galleryService: galleryService,
		rsvpService:    rsvpService,
		weddingService: weddingService,
		now:            time.Now,
	}
}

// Index renders the page. The category, expanded and photo query
// parameters are applied to the guest's gallery first, in that order.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	guestID := middleware.GuestID(c)
	if err := h.applyQuery(c, guestID); err != nil {
		return galleryError(err)
	}
	return h.render(c, fiber.StatusOK, guestID, web.RSVPView{Form: dto.RSVPRequest{Guests: models.MinGuests}})
}

func (h *PageHandler) applyQuery(c *fiber.Ctx, guestID string) error {
	ctx := c.UserContext()

	if category := c.Query("category"); category != "" {
		if _, err := h.galleryService.SelectCategory(ctx, guestID, category); err != nil {
			return err
		}
	}

	if raw := c.Query("expanded"); raw != "" {
		want, err := strconv.ParseBool(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "expanded must be true or false")
		}
		state, err := h.galleryService.State(ctx, guestID)
		if err != nil {
			return err
		}
		if state.Expanded != want {
			if _, err := h.galleryService.ToggleExpand(ctx, guestID); err != nil {
				return err
			}
		}
	}

	if raw := c.Query("photo"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid photo id")
		}
		if _, err := h.galleryService.Open(ctx, guestID, id); err != nil {
			return err
		}
	}
	return nil
}

// SubmitRSVP handles the plain form post. A rejected form is rendered
// again with the guest's input and the field messages.
func (h *PageHandler) SubmitRSVP(c *fiber.Ctx) error {
	guestID := middleware.GuestID(c)

	var req dto.RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}

	if _, err := h.rsvpService.Submit(c.UserContext(), guestID, &req); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return h.render(c, fiber.StatusBadRequest, guestID, web.RSVPView{Form: req, Errors: verr.Fields})
		}
		return err
	}
	return c.Redirect(rsvpAnchor, fiber.StatusSeeOther)
}

func (h *PageHandler) render(c *fiber.Ctx, status int, guestID string, form web.RSVPView) error {
	data, err := h.pageData(c.UserContext(), guestID, form)
	if err != nil {
		return err
	}

	c.Status(status)
	c.Type("html", "utf-8")
	if err := h.renderer.Render(c, "index.html", data); err != nil {
		logger.Error(logger.CategoryAPI, "render_failed", "Failed to render page", err, map[string]interface{}{"guest_id": guestID})
		return err
	}
	return nil
}

func (h *PageHandler) pageData(ctx context.Context, guestID string, form web.RSVPView) (*web.PageData, error) {
	details := h.weddingService.Details(ctx)

	state, err := h.galleryService.State(ctx, guestID)
	if err != nil {
		return nil, err
	}
	wishes, err := h.rsvpService.Wishes(ctx)
	if err != nil {
		return nil, err
	}

	form.Replied = h.rsvpService.HasReplied(guestID)
	form.Submitted = h.rsvpService.IsSubmitted(guestID)

	return &web.PageData{
		Details:       details,
		Countdown:     dto.CountdownToResponse(h.weddingService.Countdown(h.now()), details.Date),
		Gallery:       state,
		Wishes:        wishes,
		RSVP:          form,
		Sections:      navigation.Sections,
		ActiveSection: h.galleryService.ActiveSection(guestID),
		Year:          details.Date.Year(),
	}, nil
}
