package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// HeaderRequestID se respeta si llega en la petición; si no, se genera.
const HeaderRequestID = "X-Request-ID"

const localLogger = "logger"

// RequestLogger asigna un request id, deja un logger hijo en c.Locals y registra
// método, ruta, status y latencia al terminar. Si la ruta pasó por AuthMiddleware
// también registra subject y role del token.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		method, path := c.Method(), c.Path()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		reqLog := log.Child("request_id", rid)
		c.Locals(localLogger, reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		}
		if sub := GetSubject(c); sub != "" {
			ev = ev.Str("subject", sub).Str("role", GetRole(c))
		}
		ev.Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// RequestLog devuelve el logger de la petición; Nop si RequestLogger no está montado.
func RequestLog(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
