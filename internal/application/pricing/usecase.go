package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-services/internal/domain"
)

// CouponResult resultado de evaluar un cupón contra un total.
type CouponResult struct {
	Valid    bool
	Discount decimal.Decimal
	Final    decimal.Decimal
}

// PricingUseCase resuelve precios y evalúa cupones sobre el catálogo estático.
type PricingUseCase struct {
	catalog *Catalog
}

// NewPricingUseCase construye el caso de uso con el catálogo cargado.
func NewPricingUseCase(catalog *Catalog) *PricingUseCase {
	return &PricingUseCase{catalog: catalog}
}

// GetPrice busca el precio exacto de un SKU. Devuelve domain.ErrNoPrice si
// el SKU no está en la tabla.
func (uc *PricingUseCase) GetPrice(sku string) (decimal.Decimal, error) {
	p, ok := uc.catalog.Price(sku)
	if !ok {
		return decimal.Zero, domain.ErrNoPrice
	}
	return p, nil
}

// ValidateCoupon evalúa un código contra itemsTotal. Un código inexistente o
// inactivo produce Valid=false; el cliente no distingue ambos casos. Para un
// código activo: discount = itemsTotal * value / 100 y final = max(0, itemsTotal - discount).
func (uc *PricingUseCase) ValidateCoupon(code string, itemsTotal decimal.Decimal) CouponResult {
	c, ok := uc.catalog.Coupon(code)
	if !ok || !c.Active {
		return CouponResult{Valid: false}
	}
	discount := itemsTotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	final := itemsTotal.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	return CouponResult{Valid: true, Discount: discount, Final: final}
}
