package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen
// a los códigos de razón del API (no_stock, no_reserved, no_price, invalid).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNoStock      = errors.New("stock disponible insuficiente o inexistente")
	ErrNoReserved   = errors.New("stock reservado insuficiente o inexistente")
	ErrNoPrice      = errors.New("precio no encontrado para el SKU")
)
