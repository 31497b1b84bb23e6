package http

import (
	"context"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Pinger comprueba la disponibilidad del almacenamiento (*pgxpool.Pool lo implementa).
type Pinger interface {
	Ping(ctx context.Context) error
}

// ServerConfig opciones del servidor HTTP.
type ServerConfig struct {
	AppName        string
	AllowedOrigins []string
	SwaggerFile    string // vacío: sin /docs
	DB             Pinger // nil: /health no consulta la base
	Metrics        *Metrics
}

// NewApp construye la aplicación Fiber con el middleware común y todas las rutas.
func NewApp(cfg ServerConfig, deps RouterDeps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
		deps.Log = log
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(CORS(cfg.AllowedOrigins))
	app.Use(logger.Middleware(log))
	if cfg.Metrics != nil {
		app.Use(cfg.Metrics.Middleware())
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	if cfg.SwaggerFile != "" {
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    "Inventory Tracker API",
		}))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API de Inventarios funcionando"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		if cfg.DB != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := cfg.DB.Ping(ctx); err != nil {
				log.Warn().Err(err).Msg("health: base de datos no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.AppName})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	Router(app, deps)
	return app
}
