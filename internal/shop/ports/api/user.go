package api

import (
	"context"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
)

// CredentialsChange - запрошенное администратором изменение учетной записи.
// Нераспознанные значения роли и статуса игнорируются.
type CredentialsChange struct {
	Role     string
	Status   string
	Password string
}

// Session - результат входа.
type Session struct {
	User  *entities.User
	Token *services.IssuedToken
}

// UserUseCase определяет операции с учетными записями и сессиями.
type UserUseCase interface {
	Register(ctx context.Context, email, password string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*Session, error)

	Logout(ctx context.Context, token string) error

	Authenticate(ctx context.Context, token string) (*services.VerifiedToken, error)

	List(ctx context.Context) ([]*entities.User, error)

	UpdateCredentials(ctx context.Context, id int64, change CredentialsChange) (*entities.User, error)

	Delete(ctx context.Context, id int64) error
}
