package entity

// Stock representa el inventario de un SKU en una tienda (tabla store_stock).
// Available son unidades libres; Reserved las retenidas por pedidos pendientes.
// El par (StoreID, SKU) es único.
type Stock struct {
	ID        int64  `json:"id"`
	StoreID   string `json:"store_id"`
	SKU       string `json:"sku"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
}
