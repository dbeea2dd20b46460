package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// LocalStore key de la Store de la petición en c.Locals.
const LocalStore = "store"

// requestStore oculta Close: fasthttp cierra al resetear el contexto todo valor de
// Locals que implemente io.Closer, y la conexión solo debe cerrarla este middleware.
type requestStore struct {
	repository.Store
}

// SessionMiddleware adquiere una conexión dedicada para la petición y la libera al salir,
// también cuando el handler falla o entra en pánico (recover va por fuera).
func SessionMiddleware(provider repository.StoreProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store, err := provider.Acquire(c.UserContext())
		if err != nil {
			if errors.Is(err, domain.ErrStorageBusy) {
				RequestLog(c).Warn().Err(err).Msg("conexión no disponible: lock")
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DB_BUSY", Message: domain.ErrStorageBusy.Error()})
			}
			RequestLog(c).Error().Err(err).Msg("no se pudo adquirir conexión")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "base de datos no disponible"})
		}
		defer func() {
			if cerr := store.Close(); cerr != nil {
				RequestLog(c).Warn().Err(cerr).Msg("cerrar conexión")
			}
		}()

		c.Locals(LocalStore, requestStore{store})
		return c.Next()
	}
}

// StoreFrom devuelve la Store de la petición (después de SessionMiddleware).
func StoreFrom(c *fiber.Ctx) repository.Store {
	s, ok := c.Locals(LocalStore).(requestStore)
	if !ok {
		return nil
	}
	return s.Store
}
