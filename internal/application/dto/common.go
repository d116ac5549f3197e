package dto

// OKResponse respuesta de éxito plana ({ok:true}).
type OKResponse struct {
	OK bool `json:"ok"`
}

// ReasonResponse cuerpo de fallo con código de razón (no_stock, no_reserved,
// no_price, invalid_qty).
type ReasonResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}
