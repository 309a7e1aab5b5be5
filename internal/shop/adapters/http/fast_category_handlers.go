package http

import (
	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/app/dto"
	"goshop/internal/shop/ports/api"
)

// FastCategoryHandler содержит HTTP обработчики быстрых категорий.
type FastCategoryHandler struct {
	fastCategories api.FastCategoryUseCase
}

// NewFastCategoryHandler создает новый экземпляр обработчика быстрых категорий.
func NewFastCategoryHandler(fastCategories api.FastCategoryUseCase) *FastCategoryHandler {
	return &FastCategoryHandler{fastCategories: fastCategories}
}

// List обрабатывает GET /fastCategories.
func (h *FastCategoryHandler) List(c fiber.Ctx) error {
	categories, err := h.fastCategories.List(middleware.RequestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// Get обрабатывает GET /fastCategories/:id.
func (h *FastCategoryHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.fastCategories.Get(middleware.RequestContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// Create обрабатывает POST /fastCategories.
func (h *FastCategoryHandler) Create(c fiber.Ctx) error {
	var req dto.FastCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	category, err := h.fastCategories.Create(middleware.RequestContext(c), req.ToFastCategory())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// Update обрабатывает PUT /fastCategories/:id.
func (h *FastCategoryHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.FastCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	category, err := h.fastCategories.Update(middleware.RequestContext(c), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// Delete обрабатывает DELETE /fastCategories/:id.
func (h *FastCategoryHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.fastCategories.Delete(middleware.RequestContext(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
