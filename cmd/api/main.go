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

	"github.com/nicolljireth/inventario-joyeria/internal/application/usecase"
	"github.com/nicolljireth/inventario-joyeria/internal/infrastructure/csvstore"
	"github.com/nicolljireth/inventario-joyeria/internal/infrastructure/mailer"
	httpRouter "github.com/nicolljireth/inventario-joyeria/internal/interfaces/http"
	"github.com/nicolljireth/inventario-joyeria/pkg/config"
	"github.com/nicolljireth/inventario-joyeria/pkg/logger"
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
		Str("csv", cfg.Store.CSVPath).
		Msg("iniciando aplicación")

	// Almacén CSV con snapshot cacheado; Save invalida y la siguiente
	// lectura vuelve al archivo.
	store := csvstore.NewCachedStore(csvstore.NewStore(cfg.Store.CSVPath))

	sender := mailer.NewGomailSender(
		cfg.Mail.Host, cfg.Mail.Port,
		cfg.Mail.Emisor, cfg.Mail.PasswordApp, cfg.Mail.Receptor,
	)

	queryUC := usecase.NewQueryUseCase()
	editUC := usecase.NewEditUseCase()
	alertUC := usecase.NewAlertUseCase(sender, cfg.Mail.Receptor)
	analyticsUC := usecase.NewAnalyticsUseCase()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Joyería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       store,
		QueryUC:     queryUC,
		EditUC:      editUC,
		AlertUC:     alertUC,
		AnalyticsUC: analyticsUC,
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
