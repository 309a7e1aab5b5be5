package http

import (
	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/app/dto"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
)

// AdminHandler содержит HTTP обработчики управления пользователями.
type AdminHandler struct {
	users api.UserUseCase
}

// NewAdminHandler создает новый экземпляр обработчика администратора.
func NewAdminHandler(users api.UserUseCase) *AdminHandler {
	return &AdminHandler{users: users}
}

// ListUsers обрабатывает GET /admin/users.
func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.users.List(middleware.RequestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// ManageUser обрабатывает POST /admin/users/manage.
func (h *AdminHandler) ManageUser(c fiber.Ctx) error {
	var req dto.ManageUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	id := req.ID.ID()
	if id <= 0 {
		return entities.ErrInvalidID
	}
	user, err := h.users.UpdateCredentials(middleware.RequestContext(c), id, req.Change())
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// DeleteUser обрабатывает POST /admin/users/delete.
func (h *AdminHandler) DeleteUser(c fiber.Ctx) error {
	var req dto.DeleteUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	id := req.ID.ID()
	if id <= 0 {
		return entities.ErrInvalidID
	}
	if err := h.users.Delete(middleware.RequestContext(c), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: MsgUserDelete})
}
