package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// AppConfig opciones de la app Fiber.
type AppConfig struct {
	Name string
	Log  *logger.Logger
}

// NewApp crea la app Fiber con recover, health y las rutas del catálogo.
// Los errores no manejados responden con dto.ErrorResponse.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	log := logger.OrNop(cfg.Log).Named("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    maxImageSize + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}
