package repositories

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// FastCategoryRepository определяет операции хранения быстрых категорий.
type FastCategoryRepository interface {
	Create(ctx context.Context, category *entities.FastCategory) (*entities.FastCategory, error)
	FindByID(ctx context.Context, id int64) (*entities.FastCategory, error)
	List(ctx context.Context) ([]*entities.FastCategory, error)
	Update(ctx context.Context, id int64, patch entities.FastCategoryPatch) (*entities.FastCategory, error)
	Delete(ctx context.Context, id int64) error
}
