package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"toko-core/internal/dto"
	"toko-core/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes. Writes and admin views go through admin.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/admin/all", admin, h.HandleGetAllCategoriesAdmin)
	categoryRoutes.Get("/admin/:id", admin, h.HandleGetCategoryByIDAdmin)
	categoryRoutes.Get("/name/:name", h.HandleGetCategoryByName)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", admin, h.HandleCreateCategory)
	categoryRoutes.Put("/:id", admin, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id/permanent", admin, h.HandleHardDeleteCategory)
	categoryRoutes.Delete("/:id", admin, h.HandleDeleteCategory)
}

// HandleGetCategories lists the active categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// HandleGetAllCategoriesAdmin lists every category, inactive ones included.
func (h *CategoryHandler) HandleGetAllCategoriesAdmin(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategoriesAdmin(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// HandleGetCategoryByIDAdmin returns a category whether or not it is active.
func (h *CategoryHandler) HandleGetCategoryByIDAdmin(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Category")
	if err != nil {
		return err
	}
	category, err := h.service.GetCategoryByIDAdmin(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleGetCategoryByName looks up an active category by its exact name.
func (h *CategoryHandler) HandleGetCategoryByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return invalidArgument("Invalid category name: %s", c.Params("name"))
	}
	category, err := h.service.GetCategoryByName(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleGetCategoryByID returns an active category.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Category")
	if err != nil {
		return err
	}
	category, err := h.service.GetCategoryByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a category from the request body.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	category, err := h.service.CreateCategory(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory applies a partial update to a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Category")
	if err != nil {
		return err
	}
	var req dto.UpdateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	category, err := h.service.UpdateCategory(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleDeleteCategory marks a category inactive.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Category")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleHardDeleteCategory removes a category for good.
func (h *CategoryHandler) HandleHardDeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Category")
	if err != nil {
		return err
	}
	if err := h.service.HardDeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
