package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventory-tracker/docs"
	"github.com/jhoicas/inventory-tracker/internal/application/auth"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/inventory-tracker/internal/interfaces/http"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/jwt"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
	"github.com/jhoicas/inventory-tracker/pkg/password"
)

const swaggerFile = "./docs/swagger.json"

// @title                       Inventory Tracker API
// @version                     1.0
// @description                 API multiusuario de inventario con autenticación JWT.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		userRepo repository.UserRepository
		itemRepo repository.ItemRepository
		pinger   httpRouter.Pinger
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		userRepo = memory.NewUserRepository()
		itemRepo = memory.NewItemRepository()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		userRepo = postgres.NewUserRepository(pool)
		itemRepo = postgres.NewItemRepository(pool)
		pinger = pool
	}

	issuer, err := jwt.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL(), jwt.WithIssuer(cfg.JWT.Issuer))
	if err != nil {
		log.Fatal().Err(err).Msg("emisor JWT")
	}

	authUC := auth.NewAuthUseCase(userRepo, password.NewHasher(password.Cost), issuer)
	itemUC := inventory.NewItemUseCase(itemRepo)
	reportUC := inventory.NewReportUseCase(itemRepo, map[string]inventory.ReportGenerator{
		"pdf": report.NewPDFGenerator(),
		"xml": report.NewXMLGenerator(),
	})

	swagger := ""
	if _, err := os.Stat(swaggerFile); err == nil {
		swagger = swaggerFile
		docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		SwaggerFile:    swagger,
		DB:             pinger,
		Metrics:        httpRouter.NewMetrics("inventory"),
	}, httpRouter.RouterDeps{
		AuthUC:   authUC,
		ItemUC:   itemUC,
		ReportUC: reportUC,
		Verifier: issuer,
		Log:      log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
