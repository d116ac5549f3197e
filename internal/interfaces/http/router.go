package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-services/internal/application/inventory"
	"github.com/jhoicas/retail-services/internal/application/pricing"
)

// InventoryRouter registra las rutas del servicio de inventario.
func InventoryRouter(app *fiber.App, uc *inventory.StockUseCase) {
	h := NewInventoryHandler(uc)

	api := app.Group("/api/inventory")
	api.Get("/health", h.Health)
	api.Post("/seed", h.Seed)
	api.Get("/stock", h.QueryStock)
	api.Post("/reservations", h.Reserve)
	api.Post("/confirm", h.Confirm)
}

// PricingRouter registra las rutas del servicio de pricing.
func PricingRouter(app *fiber.App, uc *pricing.PricingUseCase) {
	h := NewPricingHandler(uc)

	api := app.Group("/api/pricing")
	api.Get("/price", h.GetPrice)
	api.Post("/coupons/validate", h.ValidateCoupon)
}
