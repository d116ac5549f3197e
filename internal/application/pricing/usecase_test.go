package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-services/internal/application/pricing"
	"github.com/jhoicas/retail-services/internal/domain"
)

func newUC() *pricing.PricingUseCase {
	return pricing.NewPricingUseCase(pricing.DefaultCatalog())
}

// ──────────────────────────────────────────────────────────────────────────────
// GetPrice
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPrice_SKUConocido(t *testing.T) {
	uc := newUC()

	p, err := uc.GetPrice("SKU-001")
	require.NoError(t, err)
	assert.True(t, p.Equal(decimal.NewFromInt(100)), "SKU-001 debe costar 100")

	p, err = uc.GetPrice("SKU-002")
	require.NoError(t, err)
	assert.True(t, p.Equal(decimal.NewFromInt(50)), "SKU-002 debe costar 50")
}

func TestGetPrice_SKUDesconocido_RetornaErrNoPrice(t *testing.T) {
	uc := newUC()

	_, err := uc.GetPrice("UNKNOWN")
	assert.ErrorIs(t, err, domain.ErrNoPrice)
}

func TestGetPrice_SKUVacio_RetornaErrNoPrice(t *testing.T) {
	uc := newUC()

	_, err := uc.GetPrice("")
	assert.ErrorIs(t, err, domain.ErrNoPrice)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateCoupon
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCoupon_CodigoActivo(t *testing.T) {
	uc := newUC()

	res := uc.ValidateCoupon("SAVE10", decimal.NewFromInt(200))
	require.True(t, res.Valid)
	assert.True(t, res.Discount.Equal(decimal.NewFromInt(20)), "10 por ciento de 200 son 20")
	assert.True(t, res.Final.Equal(decimal.NewFromInt(180)))
}

func TestValidateCoupon_CodigoInexistente(t *testing.T) {
	uc := newUC()

	res := uc.ValidateCoupon("NOPE", decimal.NewFromInt(100))
	assert.False(t, res.Valid)
}

func TestValidateCoupon_CodigoInactivo(t *testing.T) {
	uc := newUC()

	// WELCOME5 existe en el catálogo pero está inactivo; el resultado es el
	// mismo que para un código inexistente.
	res := uc.ValidateCoupon("WELCOME5", decimal.NewFromInt(100))
	assert.False(t, res.Valid)
}

func TestValidateCoupon_TotalCero_DescuentoCero(t *testing.T) {
	uc := newUC()

	res := uc.ValidateCoupon("SAVE10", decimal.Zero)
	require.True(t, res.Valid, "un código activo con total cero sigue siendo válido")
	assert.True(t, res.Discount.IsZero())
	assert.True(t, res.Final.IsZero())
}

func TestValidateCoupon_FinalNuncaNegativo(t *testing.T) {
	uc := newUC()

	res := uc.ValidateCoupon("SAVE10", decimal.NewFromInt(-50))
	require.True(t, res.Valid)
	assert.False(t, res.Final.IsNegative(), "final = max(0, total - descuento)")
}
