package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/gallery"
	"wedding-invitation/domain/services"
	"wedding-invitation/interfaces/api/middleware"
	"wedding-invitation/pkg/utils"
)

// galleryAnchor is where the plain-link routes send the browser back to.
const galleryAnchor = "/#gallery"

type GalleryHandler struct {
	galleryService services.GalleryService
}

func NewGalleryHandler(galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// galleryError maps service errors to HTTP errors for the error middleware.
func galleryError(err error) error {
	switch {
	case errors.Is(err, gallery.ErrUnknownCategory), errors.Is(err, gallery.ErrUnknownDirection):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPhotoNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPhotoNotInView):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return err
}

// GetState returns the guest's gallery view.
// @Router /api/v1/gallery [get]
func (h *GalleryHandler) GetState(c *fiber.Ctx) error {
	state, err := h.galleryService.State(c.UserContext(), middleware.GuestID(c))
	if err != nil {
		return galleryError(err)
	}
	return utils.SuccessResponse(c, "Gallery retrieved", state)
}

// SelectCategory
// @Router /api/v1/gallery/category [post]
func (h *GalleryHandler) SelectCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	state, err := h.galleryService.SelectCategory(c.UserContext(), middleware.GuestID(c), req.Category)
	if err != nil {
		return galleryError(err)
	}
	return utils.SuccessResponse(c, "Category selected", state)
}

// @Router /api/v1/gallery/expand [post]
func (h *GalleryHandler) ToggleExpand(c *fiber.Ctx) error {
	state, err := h.galleryService.ToggleExpand(c.UserContext(), middleware.GuestID(c))
	if err != nil {
		return galleryError(err)
	}
	return utils.SuccessResponse(c, "Gallery toggled", state)
}

// @Router /api/v1/gallery/open [post]
func (h *GalleryHandler) Open(c *fiber.Ctx) error {
	var req dto.OpenPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	state, err := h.galleryService.Open(c.UserContext(), middleware.GuestID(c), req.PhotoID)
	if err != nil {
		return galleryError(err)
	}
	return utils.SuccessResponse(c, "Photo opened", state)
}

// @Router /api/v1/gallery/close [post]
func (h *GalleryHandler) Close(c *fiber.Ctx) error {
	state, err := h.galleryService.Close(c.UserContext(), middleware.GuestID(c))
	if err != nil {
		return galleryError(err)
	}
	return utils.SuccessResponse(c, "Lightbox closed", state)
}

// @Router /api/v1/gallery/navigate [post]
func (h *GalleryHandler) Navigate(c *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	state, err := h.galleryService.Navigate(c.UserContext(), middleware.GuestID(c), req.Direction)
	if err != nil {
		return galleryError(err)
	}
	return utils.SuccessResponse(c, "Photo changed", state)
}

// The handlers below back the page's links and forms. Each applies one
// transition and sends the browser back to the gallery section.

func (h *GalleryHandler) SelectCategoryForm(c *fiber.Ctx) error {
	if _, err := h.galleryService.SelectCategory(c.UserContext(), middleware.GuestID(c), c.Params("category")); err != nil {
		return galleryError(err)
	}
	return c.Redirect(galleryAnchor, fiber.StatusSeeOther)
}

func (h *GalleryHandler) ToggleExpandForm(c *fiber.Ctx) error {
	if _, err := h.galleryService.ToggleExpand(c.UserContext(), middleware.GuestID(c)); err != nil {
		return galleryError(err)
	}
	return c.Redirect(galleryAnchor, fiber.StatusSeeOther)
}

func (h *GalleryHandler) OpenForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid photo id")
	}
	if _, err := h.galleryService.Open(c.UserContext(), middleware.GuestID(c), id); err != nil {
		return galleryError(err)
	}
	return c.Redirect(galleryAnchor, fiber.StatusSeeOther)
}

func (h *GalleryHandler) CloseForm(c *fiber.Ctx) error {
	if _, err := h.galleryService.Close(c.UserContext(), middleware.GuestID(c)); err != nil {
		return galleryError(err)
	}
	return c.Redirect(galleryAnchor, fiber.StatusSeeOther)
}

func (h *GalleryHandler) NavigateForm(c *fiber.Ctx) error {
	if _, err := h.galleryService.Navigate(c.UserContext(), middleware.GuestID(c), c.Params("direction")); err != nil {
		return galleryError(err)
	}
	return c.Redirect(galleryAnchor, fiber.StatusSeeOther)
}
