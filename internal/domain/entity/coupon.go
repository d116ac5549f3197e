package entity

import "github.com/shopspring/decimal"

// Tipos de descuento de cupón. Solo existe el porcentual.
const CouponTypePercent = "percent"

// Coupon cupón de descuento del servicio de pricing. El catálogo se carga al
// arrancar el proceso y no se modifica después.
type Coupon struct {
	Code   string
	Type   string
	Value  decimal.Decimal // porcentaje de descuento (10 = 10%)
	Active bool
}
