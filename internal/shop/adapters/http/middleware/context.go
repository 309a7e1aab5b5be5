// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/domain/services"
)

type localsKey int

const (
	localsContext localsKey = iota
	localsClaims
)

// RequestContext возвращает контекст запроса с логгером и request id.
func RequestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(localsContext).(context.Context); ok {
		return ctx
	}
	return c.Context()
}

// SetRequestContext сохраняет контекст запроса.
func SetRequestContext(c fiber.Ctx, ctx context.Context) {
	c.Locals(localsContext, ctx)
}

// Claims возвращает утверждения проверенного токена.
func Claims(c fiber.Ctx) (*services.VerifiedToken, bool) {
	claims, ok := c.Locals(localsClaims).(*services.VerifiedToken)
	return claims, ok && claims != nil
}
