package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-services/internal/domain/entity"
)

// Catalog tablas estáticas de precios y cupones. Se cargan una vez al arrancar
// el proceso y son de solo lectura después, así que no requieren sincronización.
type Catalog struct {
	prices  map[string]decimal.Decimal
	coupons map[string]entity.Coupon
}

// DefaultCatalog construye el catálogo de demostración: dos SKUs, un cupón
// activo y uno inactivo.
func DefaultCatalog() *Catalog {
	return &Catalog{
		prices: map[string]decimal.Decimal{
			"SKU-001": decimal.NewFromInt(100),
			"SKU-002": decimal.NewFromInt(50),
		},
		coupons: map[string]entity.Coupon{
			"SAVE10": {
				Code:   "SAVE10",
				Type:   entity.CouponTypePercent,
				Value:  decimal.NewFromInt(10),
				Active: true,
			},
			"WELCOME5": {
				Code:   "WELCOME5",
				Type:   entity.CouponTypePercent,
				Value:  decimal.NewFromInt(5),
				Active: false,
			},
		},
	}
}

// Price devuelve el precio de un SKU y si existe en la tabla.
func (c *Catalog) Price(sku string) (decimal.Decimal, bool) {
	p, ok := c.prices[sku]
	return p, ok
}

// Coupon devuelve el cupón de un código y si existe en la tabla.
func (c *Catalog) Coupon(code string) (entity.Coupon, bool) {
	cp, ok := c.coupons[code]
	return cp, ok
}
