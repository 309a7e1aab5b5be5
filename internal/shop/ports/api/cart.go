package api

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// CartUseCase определяет операции корзины.
type CartUseCase interface {
	GetCart(ctx context.Context, userID int64) (*entities.Cart, error)

	AddItem(ctx context.Context, key entities.CartKey, quantity int) (*entities.AddResult, error)

	// SetQuantity возвращает nil без ошибки, если строка удалена из-за quantity <= 0.
	SetQuantity(ctx context.Context, key entities.CartKey, quantity int) (*entities.CartItem, error)

	RemoveItem(ctx context.Context, key entities.CartKey) error

	Clear(ctx context.Context, userID int64) error
}
