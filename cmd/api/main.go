package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/facility-api/internal/application/usecase"
	"github.com/jhoicas/facility-api/internal/infrastructure/metrics"
	"github.com/jhoicas/facility-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/facility-api/internal/interfaces/http"
	"github.com/jhoicas/facility-api/pkg/config"
	"github.com/jhoicas/facility-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("hierarchy_strict", cfg.Hierarchy.Strict).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	// El almacén se construye y se inyecta explícitamente; su ciclo de vida
	// va atado al arranque y apagado del proceso, no a un singleton de módulo.
	registry := prometheus.NewRegistry()
	store := metrics.NewInstrumentedStore(
		mongodb.NewStore(client, cfg.Mongo.Database),
		metrics.NewStoreMetrics(registry),
	)

	resolver := usecase.NewHierarchyResolver(store, cfg.Hierarchy.Strict)
	locationUC := usecase.NewLocationUseCase(store, log)
	departmentUC := usecase.NewDepartmentUseCase(store, resolver, log)
	categoryUC := usecase.NewCategoryUseCase(store, resolver, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocationUC:   locationUC,
		DepartmentUC: departmentUC,
		CategoryUC:   categoryUC,
	})

	go func() {
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
