package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// UseCommon registra los middlewares compartidos por ambos servicios:
// recover, CORS permisivo, request ID (UUID v4 en X-Request-ID) y log
// de cada petición estilo dev.
func UseCommon(app *fiber.App) {
	app.Use(recover.New())
	app.Use(cors.New()) // permisivo: cualquier origen, como el cors() original
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${method} ${path} ${status} ${latency} reqid=${locals:requestid}\n",
	}))
}
