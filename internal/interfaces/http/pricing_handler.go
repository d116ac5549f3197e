package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-services/internal/application/dto"
	"github.com/jhoicas/retail-services/internal/application/pricing"
	"github.com/jhoicas/retail-services/internal/domain"
)

// PricingHandler maneja las peticiones HTTP del servicio de pricing.
type PricingHandler struct {
	uc *pricing.PricingUseCase
}

// NewPricingHandler construye el handler inyectando el caso de uso.
func NewPricingHandler(uc *pricing.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// GetPrice godoc
// @Summary      Precio de un SKU
// @Tags         pricing
// @Produce      json
// @Param        sku  query  string  true  "SKU a consultar"
// @Success      200  {object}  dto.PriceResponse
// @Failure      404  {object}  dto.ReasonResponse
// @Router       /api/pricing/price [get]
func (h *PricingHandler) GetPrice(c *fiber.Ctx) error {
	sku := c.Query("sku")
	price, err := h.uc.GetPrice(sku)
	if err != nil {
		if errors.Is(err, domain.ErrNoPrice) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ReasonResponse{OK: false, Reason: "no_price"})
		}
		return err
	}
	return c.JSON(dto.PriceResponse{OK: true, SKU: sku, Price: price.InexactFloat64()})
}

// ValidateCoupon godoc
// @Summary      Validar cupón contra un total
// @Description  Un código inexistente o inactivo responde valid:false con 200;
//
//	la invalidez no es un error HTTP.
//
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateCouponRequest  true  "code, itemsTotal"
// @Success      200   {object}  dto.CouponValidResponse
// @Router       /api/pricing/coupons/validate [post]
func (h *PricingHandler) ValidateCoupon(c *fiber.Ctx) error {
	var in dto.ValidateCouponRequest
	// Un total no numérico ya lo coerciona el DTO a cero; aquí solo queda el
	// caso de un body completamente ilegible, que equivale al body vacío del
	// contrato original (req.body || {}).
	if err := c.BodyParser(&in); err != nil {
		in = dto.ValidateCouponRequest{}
	}
	res := h.uc.ValidateCoupon(in.Code, in.ItemsTotal.Decimal)
	if !res.Valid {
		return c.JSON(dto.CouponInvalidResponse{Valid: false, Reason: "invalid"})
	}
	return c.JSON(dto.CouponValidResponse{
		Valid:    true,
		Discount: res.Discount.InexactFloat64(),
		Final:    res.Final.InexactFloat64(),
	})
}
