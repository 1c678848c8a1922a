package handlers

import (
	"time"

	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ModerationHandler struct {
	contentService    *services.ContentService
	moderationService *services.ModerationService
	reportService     *services.ReportService
	now               func() time.Time
}

func NewModerationHandler(
	contentService *services.ContentService,
	moderationService *services.ModerationService,
	reportService *services.ReportService,
) *ModerationHandler {
	return &ModerationHandler{
		contentService:    contentService,
		moderationService: moderationService,
		reportService:     reportService,
		now:               time.Now,
	}
}

func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := h.reportService.File(c.UserContext(), actorOf(c), req.ContentID, req.Reason)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ModerationHandler) ListContent(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := services.ContentFilter{
		Status:     models.ContentStatus(c.Query("status")),
		DivisionID: c.Query("division_id"),
		DistrictID: c.Query("district_id"),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid category ID")
		}
		filter.CategoryID = &categoryID
	}

	items, total, err := h.moderationService.List(c.UserContext(), actorOf(c), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.PageResponse{
		Items:  dto.NewContentList(items, h.now()),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *ModerationHandler) CreateContent(c *fiber.Ctx) error {
	var req dto.AdminContentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.contentService.AdminCreate(c.UserContext(), actorOf(c), services.AdminCreateInput{
		SubmitInput: services.SubmitInput{
			CategoryID: req.CategoryID,
			DistrictID: req.DistrictID,
			DivisionID: req.DivisionID,
			Values:     req.Values,
		},
		IsSponsored:    req.IsSponsored,
		SponsoredUntil: req.SponsoredUntil,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewContentResponse(item, h.now()))
}

func (h *ModerationHandler) UpdateContent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	var req dto.AdminContentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.contentService.AdminUpdate(c.UserContext(), actorOf(c), id, services.AdminUpdateInput{
		Values:          req.Values,
		IsSponsored:     req.IsSponsored,
		SponsoredUntil:  req.SponsoredUntil,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewContentResponse(item, h.now()))
}

func (h *ModerationHandler) SetStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	var req dto.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.moderationService.SetStatus(c.UserContext(), actorOf(c), id, models.ContentStatus(req.Status), req.ExpectedVersion)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewContentResponse(item, h.now()))
}

func (h *ModerationHandler) DeleteContent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	if err := h.moderationService.Delete(c.UserContext(), actorOf(c), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Content deleted successfully"})
}

func (h *ModerationHandler) History(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	actions, err := h.moderationService.History(c.UserContext(), actorOf(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"actions": actions})
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	reports, total, err := h.reportService.List(c.UserContext(), actorOf(c), models.ReportStatus(c.Query("status")), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: reports, Total: total, Limit: limit, Offset: offset})
}

func (h *ModerationHandler) ResolveReport(c *fiber.Ctx) error {
	reportID, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := h.reportService.Resolve(c.UserContext(), actorOf(c), reportID, req.Action)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(report)
}

func (h *ModerationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.moderationService.Stats(c.UserContext(), actorOf(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stats)
}
