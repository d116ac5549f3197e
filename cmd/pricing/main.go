package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-services/internal/application/pricing"
	httprouter "github.com/jhoicas/retail-services/internal/interfaces/http"
	"github.com/jhoicas/retail-services/pkg/config"
	"github.com/jhoicas/retail-services/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "pricing",
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando pricing-service")

	// Catálogo estático: se carga una vez y es de solo lectura.
	pricingUC := pricing.NewPricingUseCase(pricing.DefaultCatalog())

	app := fiber.New(fiber.Config{
		AppName:      "pricing-service",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	httprouter.UseCommon(app)
	httprouter.PricingRouter(app, pricingUC)

	go func() {
		if err := app.Listen(cfg.Pricing.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.Pricing.Addr()).Msg("pricing-service escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("pricing-service detenido")
}
