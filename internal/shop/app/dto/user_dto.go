package dto

import (
	"time"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
)

// CredentialsRequest содержит email и пароль для регистрации и входа.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse - ответ на регистрацию.
type RegisterResponse struct {
	ID      int64         `json:"id"`
	Email   string        `json:"email"`
	Role    entities.Role `json:"role"`
	Message string        `json:"message"`
}

// UserView - публичные данные пользователя.
type UserView struct {
	ID    int64         `json:"id"`
	Email string        `json:"email"`
	Role  entities.Role `json:"role"`
}

// LoginResponse - ответ на вход. Сам токен передается только в cookie.
type LoginResponse struct {
	Message   string    `json:"message"`
	User      UserView  `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewLoginResponse формирует ответ на вход.
func NewLoginResponse(session *api.Session, message string) LoginResponse {
	return LoginResponse{
		Message:   message,
		User:      UserView{ID: session.User.ID, Email: session.User.Email, Role: session.User.Role},
		ExpiresAt: session.Token.ExpiresAt,
	}
}

// NewMeResponse формирует ответ /users/me из утверждений токена.
func NewMeResponse(token *services.VerifiedToken) UserView {
	return UserView{ID: token.UserID, Email: token.Email, Role: token.Role}
}

// ManageUserRequest - тело запроса администратора на изменение учетной записи.
type ManageUserRequest struct {
	ID       Int    `json:"id"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

// Change возвращает запрошенное изменение.
func (r *ManageUserRequest) Change() api.CredentialsChange {
	return api.CredentialsChange{Role: r.Role, Status: r.Status, Password: r.Password}
}

// DeleteUserRequest - тело запроса администратора на удаление пользователя.
type DeleteUserRequest struct {
	ID Int `json:"id"`
}

// MessageResponse - ответ, содержащий только сообщение.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
