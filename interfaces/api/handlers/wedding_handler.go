package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/links"
	"wedding-invitation/domain/services"
	"wedding-invitation/pkg/utils"
)

type WeddingHandler struct {
	weddingService services.WeddingService
}

func NewWeddingHandler(weddingService services.WeddingService) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService}
}

// @Router /api/v1/details [get]
func (h *WeddingHandler) GetDetails(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, "Wedding details", h.weddingService.Details(c.UserContext()))
}

// @Router /api/v1/countdown [get]
func (h *WeddingHandler) GetCountdown(c *fiber.Ctx) error {
	details := h.weddingService.Details(c.UserContext())
	b := h.weddingService.Countdown(time.Now())
	return utils.SuccessResponse(c, "Countdown", dto.CountdownToResponse(b, details.Date))
}

// GetGiftQR renders the account's transfer QR as PNG.
// @Param size query int false "Side in pixels, 64 to 1024"
// @Router /api/v1/gifts/{id}/qr.png [get]
func (h *WeddingHandler) GetGiftQR(c *fiber.Ctx) error {
	png, err := h.weddingService.GiftQRCode(c.UserContext(), c.Params("id"), c.QueryInt("size", links.DefaultQRSize))
	if err != nil {
		if errors.Is(err, services.ErrGiftNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	c.Type("png")
	return c.Send(png)
}
