package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/cespare/xxhash/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContentHandler struct {
	contentService *services.ContentService
	now            func() time.Time
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService, now: time.Now}
}

func (h *ContentHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitContentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.contentService.Submit(c.UserContext(), actorOf(c), services.SubmitInput{
		CategoryID: req.CategoryID,
		DistrictID: req.DistrictID,
		DivisionID: req.DivisionID,
		Values:     req.Values,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewContentResponse(item, h.now()))
}

// Browse answers with an ETag over the body so clients can revalidate cheaply.
func (h *ContentHandler) Browse(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Query("category_id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	districtID := strings.TrimSpace(c.Query("district_id"))
	if districtID == "" {
		return handleError(c, services.ErrDistrictRequired)
	}

	now := h.now()
	items, err := h.contentService.Browse(c.UserContext(), categoryID, districtID, now)
	if err != nil {
		return handleError(c, err)
	}

	body, err := c.App().Config().JSONEncoder(fiber.Map{"items": dto.NewContentList(items, now)})
	if err != nil {
		return handleError(c, err)
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Set(fiber.HeaderETag, etag)
	c.Set(fiber.HeaderCacheControl, "private, no-cache")
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

func (h *ContentHandler) Search(c *fiber.Ctx) error {
	districtID := strings.TrimSpace(c.Query("district_id"))
	if districtID == "" {
		return handleError(c, services.ErrDistrictRequired)
	}

	now := h.now()
	items, err := h.contentService.Search(c.UserContext(), districtID, c.Query("q"), now)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"items": dto.NewContentList(items, now)})
}

// Get returns a listing with its form schema so the client can render labels and
// highlighted fields.
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	item, err := h.contentService.Get(c.UserContext(), actorOf(c), id)
	if err != nil {
		return handleError(c, err)
	}

	detail, err := dto.NewContentDetail(item, h.now())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"content": detail,
		"schema":  h.contentService.Schema(item),
	})
}

func (h *ContentHandler) RecordView(c *fiber.Ctx) error {
	return h.count(c, h.contentService.RecordView)
}

func (h *ContentHandler) RecordCall(c *fiber.Ctx) error {
	return h.count(c, h.contentService.RecordCall)
}

func (h *ContentHandler) count(c *fiber.Ctx, record func(context.Context, uuid.UUID) error) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid content ID")
	}
	if err := record(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
