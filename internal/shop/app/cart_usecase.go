package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

const (
	methodGetCart     = "GetCart"
	methodAddItem     = "AddItem"
	methodSetQuantity = "SetQuantity"
	methodRemoveItem  = "RemoveItem"
	methodClearCart   = "ClearCart"

	msgAddingItem      = "adding item to cart"
	msgItemAdded       = "cart line created"
	msgItemAccumulated = "cart line quantity increased"
	msgQuantitySet     = "cart line quantity set"
	msgItemRemoved     = "cart line removed"
	msgCartCleared     = "cart cleared"

	msgErrAddItem = "failed to add item to cart"

	errCtxValidatingCartItem = "validating cart item"
	errCtxLoadingProduct     = "loading product"
	errCtxAddingCartItem     = "adding cart item"
	errCtxSettingQuantity    = "setting cart item quantity"
	errCtxRemovingCartItem   = "removing cart item"
	errCtxClearingCart       = "clearing cart"
	errCtxLoadingCart        = "loading cart"
)

// CartUseCaseImpl реализует интерфейс CartUseCase.
type CartUseCaseImpl struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartUseCase создает новый экземпляр сервиса корзины.
func NewCartUseCase(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) api.CartUseCase {
	return &CartUseCaseImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func validateCartKey(key entities.CartKey) error {
	var details []string
	if key.ProductID <= 0 {
		details = append(details, "productId is required")
	}
	if strings.TrimSpace(key.Size) == "" {
		details = append(details, "size is required")
	} else if entities.TooLong(key.Size, entities.MaxCartOptionLength) {
		details = append(details, fmt.Sprintf("size must be at most %d characters", entities.MaxCartOptionLength))
	}
	if strings.TrimSpace(key.Color) == "" {
		details = append(details, "color is required")
	} else if entities.TooLong(key.Color, entities.MaxCartOptionLength) {
		details = append(details, fmt.Sprintf("color must be at most %d characters", entities.MaxCartOptionLength))
	}
	if len(details) > 0 {
		return entities.NewValidationError("invalid cart item", details...)
	}
	return nil
}

func cartLog(ctx context.Context, method string, key entities.CartKey) *logger.Logger {
	return logger.Log(ctx).With(
		zap.String("method", method),
		zap.Int64("userID", key.UserID),
		zap.Int64("productID", key.ProductID),
		zap.String("size", key.Size),
		zap.String("color", key.Color),
	)
}

// GetCart возвращает строки корзины с итогами.
func (c *CartUseCaseImpl) GetCart(ctx context.Context, userID int64) (*entities.Cart, error) {
	logger.Log(ctx).Debug(ctx, methodGetCart, zap.Int64("userID", userID))

	lines, err := c.cartRepo.Lines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingCart, err)
	}
	return entities.NewCart(lines), nil
}

// AddItem добавляет товар в корзину. Повторное добавление того же варианта
// увеличивает количество, цена фиксируется при первом добавлении.
func (c *CartUseCaseImpl) AddItem(ctx context.Context, key entities.CartKey, quantity int) (*entities.AddResult, error) {
	log := cartLog(ctx, methodAddItem, key)
	log.Debug(ctx, msgAddingItem, zap.Int("quantity", quantity))

	if err := validateCartKey(key); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCartItem, err)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCartItem,
			entities.NewValidationError("invalid cart item", "quantity must be at least 1"))
	}
	if quantity > entities.MaxQuantity {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCartItem, entities.ErrCartItemTooLarge)
	}

	product, err := c.productRepo.FindByID(ctx, key.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingProduct, err)
	}

	result, err := c.cartRepo.AddOrAccumulate(ctx, key, quantity, product.Price)
	if err != nil {
		log.Warn(ctx, msgErrAddItem, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingCartItem, err)
	}

	if result.Created {
		log.Info(ctx, msgItemAdded, zap.Int64("itemID", result.Item.ID))
	} else {
		log.Info(ctx, msgItemAccumulated, zap.Int64("itemID", result.Item.ID), zap.Int("quantity", result.Item.Quantity))
	}
	return result, nil
}

// SetQuantity присваивает количество. Значение <= 0 удаляет строку, тогда возвращается nil.
func (c *CartUseCaseImpl) SetQuantity(ctx context.Context, key entities.CartKey, quantity int) (*entities.CartItem, error) {
	log := cartLog(ctx, methodSetQuantity, key)

	if err := validateCartKey(key); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCartItem, err)
	}

	if quantity <= 0 {
		if err := c.cartRepo.Remove(ctx, key); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxRemovingCartItem, err)
		}
		log.Info(ctx, msgItemRemoved)
		return nil, nil
	}

	if quantity > entities.MaxQuantity {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCartItem, entities.ErrCartItemTooLarge)
	}

	item, err := c.cartRepo.SetQuantity(ctx, key, quantity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSettingQuantity, err)
	}

	log.Info(ctx, msgQuantitySet, zap.Int("quantity", quantity))
	return item, nil
}

// RemoveItem удаляет строку корзины.
func (c *CartUseCaseImpl) RemoveItem(ctx context.Context, key entities.CartKey) error {
	log := cartLog(ctx, methodRemoveItem, key)

	if err := validateCartKey(key); err != nil {
		return fmt.Errorf("%s: %w", errCtxValidatingCartItem, err)
	}

	if err := c.cartRepo.Remove(ctx, key); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingCartItem, err)
	}

	log.Info(ctx, msgItemRemoved)
	return nil
}

// Clear очищает корзину. Пустая корзина не считается ошибкой.
func (c *CartUseCaseImpl) Clear(ctx context.Context, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodClearCart), zap.Int64("userID", userID))

	removed, err := c.cartRepo.Clear(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxClearingCart, err)
	}

	log.Info(ctx, msgCartCleared, zap.Int64("removed", removed))
	return nil
}
