// Package api описывает порты сценариев использования, которые вызывает транспорт.
package api

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// CatalogUseCase определяет операции каталога товаров.
type CatalogUseCase interface {
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)

	Get(ctx context.Context, id int64) (*entities.Product, error)

	List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error)

	Update(ctx context.Context, id int64, patch entities.ProductPatch) (*entities.Product, error)

	Delete(ctx context.Context, id int64) error
}

// CategoryUseCase определяет операции с категориями.
type CategoryUseCase interface {
	Create(ctx context.Context, category *entities.Category) (*entities.Category, error)

	Get(ctx context.Context, id int64) (*entities.Category, error)

	List(ctx context.Context) ([]*entities.Category, error)

	Update(ctx context.Context, id int64, patch entities.CategoryPatch) (*entities.Category, error)

	Delete(ctx context.Context, id int64) error
}

// FastCategoryUseCase определяет операции с быстрыми категориями.
type FastCategoryUseCase interface {
	Create(ctx context.Context, category *entities.FastCategory) (*entities.FastCategory, error)

	Get(ctx context.Context, id int64) (*entities.FastCategory, error)

	List(ctx context.Context) ([]*entities.FastCategory, error)

	Update(ctx context.Context, id int64, patch entities.FastCategoryPatch) (*entities.FastCategory, error)

	Delete(ctx context.Context, id int64) error
}
