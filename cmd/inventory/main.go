package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-services/internal/application/inventory"
	"github.com/jhoicas/retail-services/internal/infrastructure/postgres"
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
		Service: "inventory",
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando inventory-service")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		// DSN mal formado: sin pool no hay nada que servir aparte de health,
		// y eso indica configuración rota, no base caída.
		log.Fatal().Err(err).Msg("configuración de PostgreSQL inválida")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	stockUC := inventory.NewStockUseCase(stockRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      "inventory-service",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	httprouter.UseCommon(app)
	httprouter.InventoryRouter(app, stockUC)

	// El servidor arranca primero; la verificación de la base va en segundo
	// plano para que /health responda aunque la conexión esté caída.
	go func() {
		pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			log.Error().Err(err).Msg("base de datos no disponible; los endpoints de datos fallarán hasta que vuelva")
			return
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Error().Err(err).Msg("sincronizar esquema store_stock")
			return
		}
		log.Info().Msg("base de datos conectada y esquema sincronizado")
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("inventory-service escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("inventory-service detenido")
}
