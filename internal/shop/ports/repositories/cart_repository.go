package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"goshop/internal/shop/domain/entities"
)

// CartRepository определяет операции хранения строк корзины.
type CartRepository interface {
	// AddOrAccumulate создает строку с ценой unitPrice или увеличивает количество существующей.
	// Зафиксированная цена существующей строки не меняется.
	AddOrAccumulate(ctx context.Context, key entities.CartKey, quantity int, unitPrice decimal.Decimal) (*entities.AddResult, error)

	SetQuantity(ctx context.Context, key entities.CartKey, quantity int) (*entities.CartItem, error)

	Remove(ctx context.Context, key entities.CartKey) error

	Clear(ctx context.Context, userID int64) (int64, error)

	Lines(ctx context.Context, userID int64) ([]entities.CartLine, error)
}
