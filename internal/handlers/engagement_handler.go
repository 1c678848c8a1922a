package handlers

import (
	"time"

	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// EngagementHandler serves reviews and saved listings.
type EngagementHandler struct {
	reviewService *services.ReviewService
	savedService  *services.SavedService
	now           func() time.Time
}

func NewEngagementHandler(reviewService *services.ReviewService, savedService *services.SavedService) *EngagementHandler {
	return &EngagementHandler{reviewService: reviewService, savedService: savedService, now: time.Now}
}

func (h *EngagementHandler) ListReviews(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	reviews, summary, err := h.reviewService.ListForContent(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews, "summary": summary})
}

func (h *EngagementHandler) UpsertReview(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.reviewService.Upsert(c.UserContext(), actorOf(c), id, req.Rating, req.Comment)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(review)
}

func (h *EngagementHandler) ToggleSaved(c *fiber.Ctx) error {
	id, err := paramID(c, "content_id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	saved, err := h.savedService.Toggle(c.UserContext(), actorOf(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"saved": saved})
}

func (h *EngagementHandler) ListSaved(c *fiber.Ctx) error {
	now := h.now()
	items, err := h.savedService.List(c.UserContext(), actorOf(c), now)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"items": dto.NewContentList(items, now)})
}
