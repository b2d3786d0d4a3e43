package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/servicedesk-api/pkg/logger"
)

// RequestLogger registra cada petición (método, ruta, status, latencia) con
// el logger estructurado de la aplicación.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
