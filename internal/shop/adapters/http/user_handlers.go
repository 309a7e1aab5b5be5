package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/app/dto"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
)

// Сообщения ответов пользователей.
const (
	MsgRegistered = "user registered successfully"
	MsgLoggedIn   = "logged in successfully"
	MsgLoggedOut  = "logged out successfully"
	MsgUserDelete = "user deleted"
)

// CookieSettings задает параметры cookie сессии.
type CookieSettings struct {
	Name     string
	Secure   bool
	SameSite string
	Domain   string
}

// UserHandler содержит HTTP обработчики регистрации и сессий.
type UserHandler struct {
	users  api.UserUseCase
	cookie CookieSettings
}

// NewUserHandler создает новый экземпляр обработчика пользователей.
func NewUserHandler(users api.UserUseCase, cookie CookieSettings) *UserHandler {
	return &UserHandler{users: users, cookie: cookie}
}

func (h *UserHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  expires,
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cookie.SameSite,
	}
}

// Register обрабатывает POST /users/register.
func (h *UserHandler) Register(c fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	user, err := h.users.Register(middleware.RequestContext(c), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Message: MsgRegistered,
	})
}

// Login обрабатывает POST /users/login и выставляет cookie с токеном.
func (h *UserHandler) Login(c fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	session, err := h.users.Login(middleware.RequestContext(c), req.Email, req.Password)
	if err != nil {
		return err
	}
	c.Cookie(h.sessionCookie(session.Token.Token, session.Token.ExpiresAt))
	return c.JSON(dto.NewLoginResponse(session, MsgLoggedIn))
}

// Logout обрабатывает POST /users/logout: отзывает токен и удаляет cookie.
func (h *UserHandler) Logout(c fiber.Ctx) error {
	if token := c.Cookies(h.cookie.Name); token != "" {
		if err := h.users.Logout(middleware.RequestContext(c), token); err != nil {
			return err
		}
	}
	c.Cookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.JSON(dto.MessageResponse{Message: MsgLoggedOut})
}

// Me обрабатывает GET /users/me.
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return services.ErrNotAuthenticated
	}
	return c.JSON(dto.NewMeResponse(claims))
}
