package dto

import "github.com/shopspring/decimal"

// CoercedDecimal decimal que tolera entradas no numéricas: un valor que no
// pueda interpretarse como número se coerciona a cero en lugar de fallar el
// decode completo, igual que Number(x || 0) en el contrato original.
type CoercedDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON acepta número, string numérico o null; todo lo demás es cero.
func (d *CoercedDecimal) UnmarshalJSON(data []byte) error {
	var dec decimal.Decimal
	if err := dec.UnmarshalJSON(data); err != nil {
		d.Decimal = decimal.Zero
		return nil
	}
	d.Decimal = dec
	return nil
}

// ValidateCouponRequest body para POST /api/pricing/coupons/validate.
// ItemsTotal acepta número o string numérico; ausente o no numérico equivale a cero.
type ValidateCouponRequest struct {
	Code       string         `json:"code"`
	ItemsTotal CoercedDecimal `json:"itemsTotal"`
}

// PriceResponse respuesta de GET /api/pricing/price.
type PriceResponse struct {
	OK    bool    `json:"ok"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

// CouponValidResponse respuesta cuando el cupón existe y está activo.
type CouponValidResponse struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Final    float64 `json:"final"`
}

// CouponInvalidResponse respuesta cuando el cupón no existe o está inactivo.
// Ambos casos son indistinguibles para el cliente.
type CouponInvalidResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}
