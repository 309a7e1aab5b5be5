package repositories

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователем.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	List(ctx context.Context) ([]*entities.User, error)

	UpdateCredentials(ctx context.Context, id int64, update entities.CredentialsUpdate) (*entities.User, error)

	Delete(ctx context.Context, id int64) error
}
