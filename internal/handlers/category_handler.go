package handlers

import (
	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/schema"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	registry        *schema.Registry
}

func NewCategoryHandler(categoryService *services.CategoryService, registry *schema.Registry) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, registry: registry}
}

func (h *CategoryHandler) ListActive(c *fiber.Ctx) error {
	categories, err := h.categoryService.ListActive(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (h *CategoryHandler) Schema(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	category, cfg, err := h.categoryService.Schema(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"category": category, "schema": cfg})
}

// ConfigByName is the display-name lookup older clients use. Unknown names get the
// default schema.
func (h *CategoryHandler) ConfigByName(c *fiber.Ctx) error {
	return c.JSON(h.registry.GetCategoryConfig(c.Query("name")))
}

func (h *CategoryHandler) Schemas(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"schemas": h.registry.All()})
}

func (h *CategoryHandler) ListAll(c *fiber.Ctx) error {
	categories, err := h.categoryService.ListAll(c.UserContext(), actorOf(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.categoryService.Create(c.UserContext(), actorOf(c), categoryInput(req))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.categoryService.Update(c.UserContext(), actorOf(c), id, categoryInput(req))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Toggle(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req dto.ToggleCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.categoryService.SetActive(c.UserContext(), actorOf(c), id, req.Active)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := h.categoryService.Delete(c.UserContext(), actorOf(c), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}

// New categories are active unless the request says otherwise.
func categoryInput(req dto.CategoryRequest) services.CategoryInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return services.CategoryInput{
		Name:         req.Name,
		SchemaKey:    req.SchemaKey,
		Icon:         req.Icon,
		GroupName:    req.GroupName,
		Color:        req.Color,
		Active:       active,
		DisplayOrder: req.DisplayOrder,
	}
}
