package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-services/internal/application/dto"
	"github.com/jhoicas/retail-services/internal/application/inventory"
	"github.com/jhoicas/retail-services/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del servicio de inventario.
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler inyectando el caso de uso.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Health godoc
// @Summary      Liveness del servicio
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/inventory/health [get]
func (h *InventoryHandler) Health(c *fiber.Ctx) error {
	// Sin tocar la base: debe responder aunque la conexión esté caída.
	return c.JSON(dto.HealthResponse{OK: true, Via: "/api/inventory/health"})
}

// Seed godoc
// @Summary      Insertar filas de demostración
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Router       /api/inventory/seed [post]
func (h *InventoryHandler) Seed(c *fiber.Ctx) error {
	if err := h.uc.Seed(c.Context()); err != nil {
		return err
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// QueryStock godoc
// @Summary      Listar stock
// @Tags         inventory
// @Produce      json
// @Param        store  query  string  false  "Filtrar por tienda"
// @Param        sku    query  string  false  "Filtrar por SKU"
// @Success      200  {array}  entity.Stock
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) QueryStock(c *fiber.Ctx) error {
	rows, err := h.uc.Query(c.Context(), c.Query("store"), c.Query("sku"))
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// Reserve godoc
// @Summary      Reservar unidades (available -> reserved)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMutationRequest  true  "store_id, sku, qty"
// @Success      201   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ReasonResponse
// @Failure      409   {object}  dto.ReasonResponse
// @Router       /api/inventory/reservations [post]
func (h *InventoryHandler) Reserve(c *fiber.Ctx) error {
	var in dto.StockMutationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ReasonResponse{OK: false, Reason: "invalid_body"})
	}
	if err := h.uc.Reserve(c.Context(), in.StoreID, in.SKU, in.Qty); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ReasonResponse{OK: false, Reason: "invalid_qty"})
		}
		if errors.Is(err, domain.ErrNoStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ReasonResponse{OK: false, Reason: "no_stock"})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKResponse{OK: true})
}

// Confirm godoc
// @Summary      Confirmar unidades reservadas (terminal)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMutationRequest  true  "store_id, sku, qty"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ReasonResponse
// @Failure      409   {object}  dto.ReasonResponse
// @Router       /api/inventory/confirm [post]
func (h *InventoryHandler) Confirm(c *fiber.Ctx) error {
	var in dto.StockMutationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ReasonResponse{OK: false, Reason: "invalid_body"})
	}
	if err := h.uc.Confirm(c.Context(), in.StoreID, in.SKU, in.Qty); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ReasonResponse{OK: false, Reason: "invalid_qty"})
		}
		if errors.Is(err, domain.ErrNoReserved) {
			return c.Status(fiber.StatusConflict).JSON(dto.ReasonResponse{OK: false, Reason: "no_reserved"})
		}
		return err
	}
	return c.JSON(dto.OKResponse{OK: true})
}
