package dto

// ─── Stock ledger requests ───────────────────────────────────────────────────

// RegistrarMovimientoRequest applies a manual entrada/salida to a product.
type RegistrarMovimientoRequest struct {
	Tipo     string `json:"tipo"     validate:"required,oneof=entrada salida"`
	Cantidad int    `json:"cantidad" validate:"required,min=1"`
	Motivo   string `json:"motivo"   validate:"max=200"`
}

// AjusteStockRequest sets the stock counter to an absolute value; the ledger
// derives the movement kind from the delta sign.
type AjusteStockRequest struct {
	NuevaCantidad int    `json:"nueva_cantidad" validate:"min=0"`
	Motivo        string `json:"motivo"         validate:"max=200"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type MovimientoStockResponse struct {
	ID        string `json:"id"`
	Producto  string `json:"producto"`
	Tipo      string `json:"tipo"`
	Cantidad  int    `json:"cantidad"`
	Motivo    string `json:"motivo"`
	Usuario   string `json:"usuario"`
	CreatedAt string `json:"created_at"`
}

type MovimientoListResponse struct {
	Data  []MovimientoStockResponse `json:"data"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

// AjusteStockResponse reports the outcome of an absolute adjustment.
// Ajustado is false when the requested quantity matched the current stock
// (no movement recorded).
type AjusteStockResponse struct {
	Ajustado      bool   `json:"ajustado"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Tipo          string `json:"tipo,omitempty"`
	Cantidad      int    `json:"cantidad,omitempty"`
}
