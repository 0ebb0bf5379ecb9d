package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

// RegistrarVentaRequest is the proposed sale. The card fields are a
// validation gate for card payment methods only: they are checked for
// presence and then discarded — no payment data is ever persisted.
type RegistrarVentaRequest struct {
	ClienteID string             `json:"cliente_id" validate:"required,uuid"`
	Fecha     string             `json:"fecha"      validate:"omitempty,datetime=2006-01-02"`
	MedioPago string             `json:"medio_pago" validate:"required,oneof=efectivo credito debito transferencia"`
	Items     []ItemVentaRequest `json:"items"      validate:"required,min=1,dive"`

	NumeroTarjeta    string `json:"numero_tarjeta"    validate:"omitempty,max=16"`
	FechaVencimiento string `json:"fecha_vencimiento" validate:"omitempty,max=5"`
	CodigoSeguridad  string `json:"codigo_seguridad"  validate:"omitempty,max=4"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type VentaFilter struct {
	Fecha     string `form:"fecha"` // YYYY-MM-DD; empty = todas
	ClienteID string `form:"cliente_id"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	Codigo    string              `json:"codigo"`
	Cliente   string              `json:"cliente"`
	Fecha     string              `json:"fecha"`
	MedioPago string              `json:"medio_pago"`
	Items     []ItemVentaResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt string              `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// EnviarFacturaRequest triggers emailing the PDF invoice for a committed sale.
// Destino overrides the customer email when present.
type EnviarFacturaRequest struct {
	Destino string `json:"destino" validate:"omitempty,email"`
}
