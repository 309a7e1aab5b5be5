package http

import (
	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/app/dto"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
)

// Сообщения ответов корзины.
const (
	MsgItemAdded       = "item added to cart"
	MsgItemAccumulated = "item quantity updated"
	MsgQuantityUpdated = "cart item updated"
	MsgItemRemoved     = "item removed from cart"
	MsgCartCleared     = "cart cleared"
)

var errQuantityRequired = entities.NewValidationError("invalid cart item", "quantity is required")

// CartHandler содержит HTTP обработчики корзины. Все маршруты требуют аутентификации.
type CartHandler struct {
	cart api.CartUseCase
}

// NewCartHandler создает новый экземпляр обработчика корзины.
func NewCartHandler(cart api.CartUseCase) *CartHandler {
	return &CartHandler{cart: cart}
}

func userID(c fiber.Ctx) (int64, error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return 0, services.ErrNotAuthenticated
	}
	return claims.UserID, nil
}

func (h *CartHandler) bindItem(c fiber.Ctx) (*dto.CartItemRequest, int64, error) {
	uid, err := userID(c)
	if err != nil {
		return nil, 0, err
	}
	var req dto.CartItemRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, 0, err
	}
	return &req, uid, nil
}

// Get обрабатывает GET /cart.
func (h *CartHandler) Get(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	cart, err := h.cart.GetCart(middleware.RequestContext(c), uid)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCartResponse(cart))
}

// Add обрабатывает POST /cart/add. Количество по умолчанию 1.
func (h *CartHandler) Add(c fiber.Ctx) error {
	req, uid, err := h.bindItem(c)
	if err != nil {
		return err
	}
	result, err := h.cart.AddItem(middleware.RequestContext(c), req.Key(uid), req.Quantity.Or(1))
	if err != nil {
		return err
	}

	message := MsgItemAccumulated
	if result.Created {
		message = MsgItemAdded
	}
	view := dto.NewCartItemView(&result.Item)
	return c.JSON(dto.CartMutationResponse{Message: message, Item: &view})
}

// Update обрабатывает PUT /cart/update. Количество <= 0 удаляет строку.
func (h *CartHandler) Update(c fiber.Ctx) error {
	req, uid, err := h.bindItem(c)
	if err != nil {
		return err
	}
	quantity := req.Quantity.Ptr()
	if quantity == nil {
		return errQuantityRequired
	}

	item, err := h.cart.SetQuantity(middleware.RequestContext(c), req.Key(uid), *quantity)
	if err != nil {
		return err
	}
	if item == nil {
		return c.JSON(dto.CartMutationResponse{Message: MsgItemRemoved})
	}
	view := dto.NewCartItemView(item)
	return c.JSON(dto.CartMutationResponse{Message: MsgQuantityUpdated, Item: &view})
}

// Remove обрабатывает DELETE /cart/remove.
func (h *CartHandler) Remove(c fiber.Ctx) error {
	req, uid, err := h.bindItem(c)
	if err != nil {
		return err
	}
	if err := h.cart.RemoveItem(middleware.RequestContext(c), req.Key(uid)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: MsgItemRemoved})
}

// Clear обрабатывает DELETE /cart/clear.
func (h *CartHandler) Clear(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	if err := h.cart.Clear(middleware.RequestContext(c), uid); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: MsgCartCleared})
}
