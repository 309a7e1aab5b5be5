package http

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/app/dto"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
)

// ProductHandler содержит HTTP обработчики каталога товаров.
type ProductHandler struct {
	catalog api.CatalogUseCase
}

// NewProductHandler создает новый экземпляр обработчика товаров.
func NewProductHandler(catalog api.CatalogUseCase) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func productFilter(c fiber.Ctx, category string) entities.ProductFilter {
	return entities.ProductFilter{
		Category: category,
		OrderBy:  entities.ParseProductOrder(c.Query("orderBy")),
		Asc:      strings.EqualFold(c.Query("order"), "asc"),
	}
}

// List обрабатывает GET /products.
func (h *ProductHandler) List(c fiber.Ctx) error {
	products, err := h.catalog.List(middleware.RequestContext(c), productFilter(c, c.Query("category")))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// ListByCategory обрабатывает GET /products/category/:category.
func (h *ProductHandler) ListByCategory(c fiber.Ctx) error {
	products, err := h.catalog.List(middleware.RequestContext(c), productFilter(c, c.Params("category")))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Get обрабатывает GET /products/:id.
func (h *ProductHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.catalog.Get(middleware.RequestContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Create обрабатывает POST /products.
func (h *ProductHandler) Create(c fiber.Ctx) error {
	var req dto.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	product, err := h.catalog.Create(middleware.RequestContext(c), req.ToProduct())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update обрабатывает PUT /products/:id.
func (h *ProductHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	product, err := h.catalog.Update(middleware.RequestContext(c), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Delete обрабатывает DELETE /products/:id.
func (h *ProductHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.Delete(middleware.RequestContext(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
