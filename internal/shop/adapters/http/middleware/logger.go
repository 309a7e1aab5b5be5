package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/pkg/logger"
)

// NewLoggerMiddleware создает промежуточное ПО для логирования HTTP запросов.
// Ошибка цепочки сразу передается в errorHandler, чтобы в лог попал итоговый статус.
func NewLoggerMiddleware(errorHandler fiber.ErrorHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := RequestContext(c)
		start := time.Now()

		log := logger.Log(requestCtx).With(
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("ip", c.IP()),
		)

		log.Debug(requestCtx, "Request started")

		if err := c.Next(); err != nil {
			if handlerErr := errorHandler(c, err); handlerErr != nil {
				log.Error(requestCtx, "Error handler failed", zap.Error(handlerErr))
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error(requestCtx, "Request failed", logFields...)
		case status >= fiber.StatusBadRequest:
			log.Info(requestCtx, "Request rejected", logFields...)
		default:
			log.Info(requestCtx, "Request completed", logFields...)
		}
		return nil
	}
}
