package handlers

import (
	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns every app setting decoded to its type (public).
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.All(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(settings)
}

// SetSetting sets or updates a key (admin only).
func (h *SettingsHandler) SetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return fail(c, fiber.StatusBadRequest, "Key parameter is required")
	}

	var req dto.SettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	setting, err := h.settingsService.Set(c.UserContext(), actorOf(c), key, req.Value, req.Type)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Setting updated successfully",
		"setting": setting,
	})
}

func (h *SettingsHandler) DeleteSetting(c *fiber.Ctx) error {
	if err := h.settingsService.Delete(c.UserContext(), actorOf(c), c.Params("key")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Setting deleted successfully",
	})
}
