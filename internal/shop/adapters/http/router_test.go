package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/domain/entities"
)

func TestHealthAndFallback(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, nethttp.MethodGet, "/health", "", "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	s.health = errUnhealthy
	resp, _ = s.do(t, nethttp.MethodGet, "/health", "", "")
	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)

	resp, body = s.do(t, nethttp.MethodGet, "/api/nope", "", "")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "route not found", body["message"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	req, err := nethttp.NewRequest(nethttp.MethodGet, "/health", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.HeaderRequestID, "req-42")

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-42", resp.Header.Get(middleware.HeaderRequestID))
}

func TestProductRoutes(t *testing.T) {
	product := &entities.Product{ID: 5, SKU: "MUG-1", Name: "Mug", Price: decimal.RequireFromString("9.50")}

	t.Run("list with ordering and category", func(t *testing.T) {
		s := newTestServer(t)
		filter := entities.ProductFilter{Category: "kitchen", OrderBy: entities.OrderByPrice, Asc: true}
		s.catalog.On("List", mock.Anything, filter).Return([]*entities.Product{product}, nil).Once()

		resp, _ := s.do(t, nethttp.MethodGet, "/api/products?category=kitchen&orderBy=price&order=asc", "", "")
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		s.assertExpectations(t)
	})

	t.Run("list by category path defaults to newest first", func(t *testing.T) {
		s := newTestServer(t)
		filter := entities.ProductFilter{Category: "mugs", OrderBy: entities.OrderByCreatedAt}
		s.catalog.On("List", mock.Anything, filter).Return([]*entities.Product{}, nil).Once()

		resp, _ := s.do(t, nethttp.MethodGet, "/api/products/category/mugs?orderBy=bogus", "", "")
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		s.assertExpectations(t)
	})

	t.Run("get missing product", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("Get", mock.Anything, int64(9)).Return(nil, entities.ErrProductNotFound).Once()

		resp, body := s.do(t, nethttp.MethodGet, "/api/products/9", "", "")
		assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "product not found", body["message"])
	})

	t.Run("invalid id", func(t *testing.T) {
		s := newTestServer(t)

		resp, _ := s.do(t, nethttp.MethodGet, "/api/products/abc", "", "")
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	})

	t.Run("create requires admin", func(t *testing.T) {
		s := newTestServer(t)

		resp, _ := s.do(t, nethttp.MethodPost, "/api/products", "", `{"sku":"A","name":"B"}`)
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

		resp, body := s.do(t, nethttp.MethodPost, "/api/products", userToken, `{"sku":"A","name":"B"}`)
		assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "insufficient permissions", body["message"])
		s.catalog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("create as admin", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.Product) bool {
			return p.SKU == "MUG-1" && p.Price.String() == "9.5" && p.Attributes["color"] == "blue"
		})).Return(product, nil).Once()

		resp, body := s.do(t, nethttp.MethodPost, "/api/products", adminToken,
			`{"sku":"MUG-1","name":"Mug","price":"9.50","color":"blue"}`)
		assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
		assert.Equal(t, "MUG-1", body["sku"])
		s.assertExpectations(t)
	})

	t.Run("duplicate sku is a conflict with details", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("Create", mock.Anything, mock.Anything).Return(nil, entities.ErrDuplicateSKU).Once()

		resp, body := s.do(t, nethttp.MethodPost, "/api/products", adminToken, `{"sku":"MUG-1","name":"Mug"}`)
		assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
		assert.Equal(t, "product with this sku already exists", body["message"])
	})

	t.Run("validation details are returned", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("Create", mock.Anything, mock.Anything).
			Return(nil, entities.NewValidationError("invalid product", "sku is required")).Once()

		resp, body := s.do(t, nethttp.MethodPost, "/api/products", adminToken, `{"name":"Mug"}`)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []any{"sku is required"}, body["details"])
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)

		resp, body := s.do(t, nethttp.MethodPost, "/api/products", adminToken, `{"sku":`)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid request body", body["message"])
	})

	t.Run("update passes partial attributes", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p entities.ProductPatch) bool {
			return p.Name == nil && len(p.Attributes) == 1 && p.Attributes["color"] == "red"
		})).Return(product, nil).Once()

		resp, _ := s.do(t, nethttp.MethodPut, "/api/products/5", adminToken, `{"productData":{"color":"red"}}`)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		s.assertExpectations(t)
	})

	t.Run("delete referenced product", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("Delete", mock.Anything, int64(5)).Return(entities.ErrProductReferenced).Once()

		resp, _ := s.do(t, nethttp.MethodDelete, "/api/products/5", adminToken, "")
		assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

		resp, _ := s.do(t, nethttp.MethodDelete, "/api/products/5", adminToken, "")
		assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
	})
}

func TestCategoryRoutes(t *testing.T) {
	s := newTestServer(t)
	s.categories.On("List", mock.Anything).Return([]*entities.Category{{ID: 1, Name: "Mugs"}}, nil).Once()
	s.categories.On("Create", mock.Anything, &entities.Category{Name: "Cups", Image: "c.png"}).
		Return(&entities.Category{ID: 2, Name: "Cups", Image: "c.png"}, nil).Once()
	s.categories.On("Delete", mock.Anything, int64(3)).Return(entities.ErrCategoryNotFound).Once()

	resp, _ := s.do(t, nethttp.MethodGet, "/api/categories", "", "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, body := s.do(t, nethttp.MethodPost, "/api/categories", adminToken, `{"name":"Cups","img":"c.png"}`)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.Equal(t, "c.png", body["img"])

	resp, _ = s.do(t, nethttp.MethodDelete, "/api/categories/3", adminToken, "")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	s.assertExpectations(t)
}

func strPtr(s string) *string { return &s }

func TestFastCategoryRoutes(t *testing.T) {
	s := newTestServer(t)
	icon := "fire.svg"
	s.fastCategories.On("List", mock.Anything).Return([]*entities.FastCategory{{ID: 1, Name: "Sale", Icon: &icon}}, nil).Once()
	s.fastCategories.On("Create", mock.Anything, &entities.FastCategory{Name: "Hot", Icon: &icon}).
		Return(&entities.FastCategory{ID: 2, Name: "Hot", Icon: &icon}, nil).Once()
	s.fastCategories.On("Update", mock.Anything, int64(2), entities.FastCategoryPatch{Name: strPtr("Hotter")}).
		Return(&entities.FastCategory{ID: 2, Name: "Hotter", Icon: &icon}, nil).Once()
	s.fastCategories.On("Get", mock.Anything, int64(7)).Return(nil, entities.ErrFastCategoryNotFound).Once()

	resp, _ := s.do(t, nethttp.MethodGet, "/api/fastCategories", "", "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, nethttp.MethodPost, "/api/fastCategories", userToken, `{"name":"Hot","icon":"fire.svg"}`)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	resp, body := s.do(t, nethttp.MethodPost, "/api/fastCategories", adminToken, `{"name":"Hot","icon":"fire.svg"}`)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.Equal(t, "fire.svg", body["icon"])

	resp, body = s.do(t, nethttp.MethodPut, "/api/fastCategories/2", adminToken, `{"name":"Hotter"}`)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hotter", body["name"])

	resp, body = s.do(t, nethttp.MethodGet, "/api/fastCategories/7", "", "")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "fast category not found", body["message"])

	s.assertExpectations(t)
}
