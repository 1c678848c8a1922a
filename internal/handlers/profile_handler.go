package handlers

import (
	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me returns the stored profile with the effective role of this request.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	actor := actorOf(c)
	profile, err := h.profileService.Get(c.UserContext(), actor.ID)
	if err != nil {
		return handleError(c, err)
	}
	profile.Role = actor.Role
	return c.JSON(profile)
}

func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	profile, err := h.profileService.Update(c.UserContext(), actorOf(c), services.ProfileInput{
		Name:               req.Name,
		Phone:              req.Phone,
		DivisionID:         req.DivisionID,
		DistrictID:         req.DistrictID,
		SelectedDistrictID: req.SelectedDistrictID,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	profiles, total, err := h.profileService.List(c.UserContext(), actorOf(c), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: profiles, Total: total, Limit: limit, Offset: offset})
}

func (h *ProfileHandler) SetRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	profile, err := h.profileService.SetRole(c.UserContext(), actorOf(c), id, models.Role(req.Role), req.DistrictID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(profile)
}
