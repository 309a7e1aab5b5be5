// Package repositories описывает порты хранилищ магазина.
package repositories

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// ProductRepository определяет операции хранения товаров.
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)

	FindByID(ctx context.Context, id int64) (*entities.Product, error)

	List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error)

	// Update читает товар под блокировкой, применяет mutate и сохраняет результат в одной транзакции.
	Update(ctx context.Context, id int64, mutate func(*entities.Product) error) (*entities.Product, error)

	Delete(ctx context.Context, id int64) error
}
