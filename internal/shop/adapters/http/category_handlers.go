package http

import (
	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/app/dto"
	"goshop/internal/shop/ports/api"
)

// CategoryHandler содержит HTTP обработчики категорий.
type CategoryHandler struct {
	categories api.CategoryUseCase
}

// NewCategoryHandler создает новый экземпляр обработчика категорий.
func NewCategoryHandler(categories api.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List обрабатывает GET /categories.
func (h *CategoryHandler) List(c fiber.Ctx) error {
	categories, err := h.categories.List(middleware.RequestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// Get обрабатывает GET /categories/:id.
func (h *CategoryHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.categories.Get(middleware.RequestContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// Create обрабатывает POST /categories.
func (h *CategoryHandler) Create(c fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Create(middleware.RequestContext(c), req.ToCategory())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// Update обрабатывает PUT /categories/:id.
func (h *CategoryHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Update(middleware.RequestContext(c), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// Delete обрабатывает DELETE /categories/:id.
func (h *CategoryHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.categories.Delete(middleware.RequestContext(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
