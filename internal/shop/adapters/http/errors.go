// Package http содержит HTTP адаптер магазина на fiber.
package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/app/dto"
	"goshop/internal/shop/domain/entities"
	"goshop/pkg/logger"
)

// Константы сообщений об ошибках.
const (
	ErrorInternal       = "internal server error"
	ErrorInvalidRequest = "invalid request body"
	ErrorRouteNotFound  = "route not found"
)

var errInvalidBody = entities.NewValidationError(ErrorInvalidRequest)

// statusByKind сопоставляет вид доменной ошибки коду ответа.
var statusByKind = []struct {
	kind   error
	status int
}{
	{entities.ErrValidation, fiber.StatusBadRequest},
	{entities.ErrDuplicateKey, fiber.StatusConflict},
	{entities.ErrConflict, fiber.StatusConflict},
	{entities.ErrNotFound, fiber.StatusNotFound},
	{entities.ErrUnauthorized, fiber.StatusUnauthorized},
	{entities.ErrForbidden, fiber.StatusForbidden},
}

// ErrorHandler превращает ошибку обработчика в ответ {message, details}.
// Подробности неизвестных ошибок пишутся только в лог.
func ErrorHandler(c fiber.Ctx, err error) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx)

	status, body := fiber.StatusInternalServerError, dto.ErrorResponse{Message: ErrorInternal}

	var domainErr *entities.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &domainErr):
		status = statusFor(domainErr)
		body = dto.ErrorResponse{Message: domainErr.Message, Details: domainErr.Details}
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		body = dto.ErrorResponse{Message: fiberErr.Message}
	}

	if status >= fiber.StatusInternalServerError {
		log.Error(requestCtx, "request error", zap.Error(err))
	} else {
		log.Debug(requestCtx, "request rejected", zap.Int("status", status), zap.Error(err))
	}

	return c.Status(status).JSON(body)
}

func statusFor(err *entities.Error) int {
	for _, m := range statusByKind {
		if errors.Is(err.Kind, m.kind) {
			return m.status
		}
	}
	return fiber.StatusInternalServerError
}

func parseID(c fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, entities.ErrInvalidID
	}
	return id, nil
}

func bindJSON(c fiber.Ctx, out any) error {
	if err := c.Bind().JSON(out); err != nil {
		requestCtx := middleware.RequestContext(c)
		logger.Log(requestCtx).Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return errInvalidBody
	}
	return nil
}

func notFound(fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, ErrorRouteNotFound)
}
