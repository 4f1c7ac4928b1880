package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appkardex "github.com/tu-usuario/kardex-core/internal/application/kardex"
	"github.com/tu-usuario/kardex-core/internal/application/reports"
	infrapdf "github.com/tu-usuario/kardex-core/internal/infrastructure/pdf"
	"github.com/tu-usuario/kardex-core/internal/infrastructure/remote"
	httpRouter "github.com/tu-usuario/kardex-core/internal/interfaces/http"
	"github.com/tu-usuario/kardex-core/pkg/config"
	"github.com/tu-usuario/kardex-core/pkg/logger"
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
		Str("store", cfg.Store.BaseURL).
		Msg("iniciando aplicación")

	// Adaptadores del almacén remoto, la única fuente de verdad.
	storeClient := remote.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout(), log.Zerolog())
	productSource := remote.NewProductSource(storeClient)
	movementSource := remote.NewMovementSource(storeClient)
	reportSource := remote.NewReportSource(storeClient)

	kardexUC := appkardex.NewUseCase(movementSource)
	reportsUC := reports.NewUseCase(productSource, movementSource, reportSource, cfg.Stock.ExpiryWindowDays)
	dashboardUC := reports.NewDashboardUseCase(productSource, reportSource, cfg.Stock.ExpiryWindowDays)
	criticalPDF := infrapdf.NewCriticalReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kardex Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		KardexUC:    kardexUC,
		ReportsUC:   reportsUC,
		DashboardUC: dashboardUC,
		CriticalPDF: criticalPDF,
		JWTSecret:   cfg.JWT.Secret,
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
