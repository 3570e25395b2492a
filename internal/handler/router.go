package handler

import (
	"strings"

	"dsa-tutor/internal/config"
	"dsa-tutor/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const generateContentPath = "/api/generate-content"

// NewApp builds the Fiber application with middleware and all routes.
func NewApp(cfg config.ServerConfig, h *ContentHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		// The generation endpoint answers its own preflight
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions && strings.TrimRight(c.Path(), "/") == generateContentPath
		},
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
		AllowHeaders:     fiber.HeaderContentType,
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/test-cors", h.TestCORS)

	api := app.Group("/api")
	api.Options("/generate-content", h.Preflight)
	api.Post("/generate-content", h.GenerateContent)
	api.Get("/topic-history", h.TopicHistory)
	api.Get("/status", h.Status)

	return app
}
