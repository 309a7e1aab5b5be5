package middleware

import (
	"github.com/gofiber/fiber/v3"

	"goshop/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLength = 128

// NewRequestIDMiddleware кладет в контекст запроса логгер и request id.
// Идентификатор берется из заголовка клиента или генерируется, и возвращается в ответе.
func NewRequestIDMiddleware(log *logger.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logger.GenerateRequestID()
		}

		ctx := logger.NewContext(c.Context(), log)
		ctx = logger.NewRequestIDContext(ctx, requestID)
		SetRequestContext(c, ctx)

		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}
