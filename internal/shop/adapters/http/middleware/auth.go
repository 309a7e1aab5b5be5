package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware  = "auth middleware"
	LogTokenRejected   = "token rejected"
	LogRoleRejected    = "insufficient role"
	LogNoSessionCookie = "no session cookie provided"
)

// NewAuthMiddleware проверяет токен из cookie и сохраняет его утверждения.
func NewAuthMiddleware(users api.UserUseCase, cookieName string) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := RequestContext(c)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		token := c.Cookies(cookieName)
		if token == "" {
			log.Debug(requestCtx, LogNoSessionCookie)
			return services.ErrNotAuthenticated
		}

		claims, err := users.Authenticate(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, LogTokenRejected, zap.Error(err))
			return err
		}

		c.Locals(localsClaims, claims)
		return c.Next()
	}
}

// RequireRole пропускает только пользователей с указанной ролью.
// Должен стоять после NewAuthMiddleware.
func RequireRole(role entities.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := Claims(c)
		if !ok {
			return services.ErrNotAuthenticated
		}
		if claims.Role != role {
			requestCtx := RequestContext(c)
			logger.Log(requestCtx).Info(requestCtx, LogRoleRejected,
				zap.Int64("userID", claims.UserID),
				zap.String("role", string(claims.Role)),
			)
			return services.ErrInsufficientRole
		}
		return c.Next()
	}
}
