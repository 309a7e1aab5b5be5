package repositories

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// CategoryRepository определяет операции хранения категорий.
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) (*entities.Category, error)

	FindByID(ctx context.Context, id int64) (*entities.Category, error)

	List(ctx context.Context) ([]*entities.Category, error)

	Update(ctx context.Context, id int64, patch entities.CategoryPatch) (*entities.Category, error)

	Delete(ctx context.Context, id int64) error
}
