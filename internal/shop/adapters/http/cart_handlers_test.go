package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goshop/internal/shop/domain/entities"
)

var tee = entities.CartKey{UserID: 1, ProductID: 10, Size: "M", Color: "red"}

func TestCartRoutes_RequireSession(t *testing.T) {
	s := newTestServer(t)
	s.users.On("Authenticate", mock.Anything, "expired").Return(nil, entities.NewError(entities.ErrUnauthorized, "token has expired")).Once()

	resp, _ := s.do(t, nethttp.MethodGet, "/api/cart", "", "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	resp, body := s.do(t, nethttp.MethodGet, "/api/cart", "expired", "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "token has expired", body["message"])
}

func TestCartRoutes_Get(t *testing.T) {
	s := newTestServer(t)
	cart := entities.NewCart([]entities.CartLine{
		{
			Item: entities.CartItem{
				ID: 1, CartKey: tee, Quantity: 2,
				PriceAtTimeOfOrder: decimal.NewNullDecimal(decimal.RequireFromString("19.99")),
			},
			SKU:        "TEE",
			Attributes: entities.Attributes{"img": []any{"tee.png"}},
		},
	})
	s.cart.On("GetCart", mock.Anything, int64(1)).Return(cart, nil).Once()

	resp, body := s.do(t, nethttp.MethodGet, "/api/cart", userToken, "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "39.98", body["totalSum"])
	assert.InDelta(t, 1, body["totalItems"], 0)

	items := body["items"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, "tee.png", first["imgUrl"])
	assert.InDelta(t, 19.99, first["unitPrice"], 1e-9)
	s.assertExpectations(t)
}

func TestCartRoutes_Add(t *testing.T) {
	t.Run("quantity defaults to one", func(t *testing.T) {
		s := newTestServer(t)
		s.cart.On("AddItem", mock.Anything, tee, 1).
			Return(&entities.AddResult{Item: entities.CartItem{ID: 3, CartKey: tee, Quantity: 1}, Created: true}, nil).Once()

		resp, body := s.do(t, nethttp.MethodPost, "/api/cart/add", userToken, `{"productId":10,"size":"M","color":"red"}`)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Equal(t, "item added to cart", body["message"])
		s.assertExpectations(t)
	})

	t.Run("repeated add reports accumulation", func(t *testing.T) {
		s := newTestServer(t)
		s.cart.On("AddItem", mock.Anything, tee, 2).
			Return(&entities.AddResult{Item: entities.CartItem{ID: 3, CartKey: tee, Quantity: 3}}, nil).Once()

		resp, body := s.do(t, nethttp.MethodPost, "/api/cart/add", userToken, `{"productId":"10","size":"M","color":"red","quantity":2}`)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Equal(t, "item quantity updated", body["message"])
		item := body["item"].(map[string]any)
		assert.InDelta(t, 3, item["quantity"], 0)
	})

	t.Run("unknown product", func(t *testing.T) {
		s := newTestServer(t)
		s.cart.On("AddItem", mock.Anything, mock.Anything, 1).Return(nil, entities.ErrProductNotFound).Once()

		resp, _ := s.do(t, nethttp.MethodPost, "/api/cart/add", userToken, `{"productId":99,"size":"M","color":"red"}`)
		assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	})

	t.Run("concurrent insert conflict", func(t *testing.T) {
		s := newTestServer(t)
		s.cart.On("AddItem", mock.Anything, tee, 1).Return(nil, entities.ErrCartItemConflict).Once()

		resp, _ := s.do(t, nethttp.MethodPost, "/api/cart/add", userToken, `{"productId":10,"size":"M","color":"red"}`)
		assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	})
}

func TestCartRoutes_Update(t *testing.T) {
	t.Run("zero quantity removes", func(t *testing.T) {
		s := newTestServer(t)
		s.cart.On("SetQuantity", mock.Anything, tee, 0).Return(nil, nil).Once()

		resp, body := s.do(t, nethttp.MethodPut, "/api/cart/update", userToken, `{"productId":10,"size":"M","color":"red","quantity":0}`)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Equal(t, "item removed from cart", body["message"])
		assert.Nil(t, body["item"])
	})

	t.Run("quantity is required", func(t *testing.T) {
		s := newTestServer(t)

		resp, _ := s.do(t, nethttp.MethodPut, "/api/cart/update", userToken, `{"productId":10,"size":"M","color":"red"}`)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		s.cart.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("assigns quantity", func(t *testing.T) {
		s := newTestServer(t)
		s.cart.On("SetQuantity", mock.Anything, tee, 4).
			Return(&entities.CartItem{ID: 3, CartKey: tee, Quantity: 4}, nil).Once()

		resp, body := s.do(t, nethttp.MethodPut, "/api/cart/update", userToken, `{"productId":10,"size":"M","color":"red","quantity":"4"}`)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Equal(t, "cart item updated", body["message"])
	})
}

func TestCartRoutes_RemoveAndClear(t *testing.T) {
	s := newTestServer(t)
	s.cart.On("RemoveItem", mock.Anything, tee).Return(entities.ErrCartItemNotFound).Once()
	s.cart.On("Clear", mock.Anything, int64(1)).Return(nil).Once()

	resp, _ := s.do(t, nethttp.MethodDelete, "/api/cart/remove", userToken, `{"productId":10,"size":"M","color":"red"}`)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	resp, body := s.do(t, nethttp.MethodDelete, "/api/cart/clear", userToken, "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "cart cleared", body["message"])
	s.assertExpectations(t)
}
