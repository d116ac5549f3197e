package dto

// StockMutationRequest body para POST /api/inventory/reservations y
// POST /api/inventory/confirm.
type StockMutationRequest struct {
	StoreID string `json:"store_id"`
	SKU     string `json:"sku"`
	Qty     int    `json:"qty"`
}

// HealthResponse payload fijo de liveness del servicio de inventario.
type HealthResponse struct {
	OK  bool   `json:"ok"`
	Via string `json:"via"`
}
