package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/artem13815/skillstat/api/http/handlers"
	"github.com/artem13815/skillstat/api/http/middleware"
	"github.com/artem13815/skillstat/api/http/presenter"
)

type Options struct {
	// StaticDir holds the frontend; empty disables static serving.
	StaticDir   string
	CORSOrigins string
	// Docs serves /swagger/*; nil disables it.
	Docs fiber.Handler
}

// NewApp creates a Fiber app with JSON error rendering.
// Immutable: значения из Ctx переживают запрос (например, в атрибутах спанов).
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "skillstat",
		Immutable:             true,
		ErrorHandler:          presenter.ErrorHandler,
		DisableStartupMessage: true,
	})
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, opts Options, logger *zap.Logger, health *handlers.HealthHandler, skills *handlers.SkillsHandler) {
	// logger wraps recover so recovered panics are logged as 500
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))

	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Get("/skills", skills.Get)

	// unknown API paths never fall through to the frontend
	api.Use(func(c *fiber.Ctx) error {
		if p := c.Path(); p != "/api" && !strings.HasPrefix(p, "/api/") {
			return c.Next()
		}
		return presenter.Error(c, fiber.StatusNotFound, "не найдено")
	})

	if opts.Docs != nil {
		app.Get("/swagger/*", opts.Docs)
	}

	if opts.StaticDir != "" {
		app.Static("/", opts.StaticDir, fiber.Static{Index: "index.html"})
		app.Use(spaFallback(opts.StaticDir))
	}
}

// spaFallback отдаёт index.html для неизвестных путей фронтенда.
func spaFallback(dir string) fiber.Handler {
	index := filepath.Join(dir, "index.html")
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return fiber.ErrNotFound
		}
		return c.SendFile(index)
	}
}
