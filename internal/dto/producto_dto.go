package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	SKU         string          `json:"sku"          validate:"required,min=2,max=30"`
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=50"`
	Descripcion string          `json:"descripcion"  validate:"max=200"`
	Precio      decimal.Decimal `json:"precio"       validate:"required,gt=0"`
	Stock       int             `json:"stock"        validate:"min=0"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2,max=50"`
	Descripcion *string          `json:"descripcion"  validate:"omitempty,max=200"`
	Precio      *decimal.Decimal `json:"precio"       validate:"omitempty,gt=0"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProductoFilter is bound from the query string of GET /v1/productos.
// Q is a free-text OR search over nombre, descripcion and sku.
type ProductoFilter struct {
	Q         string `form:"q"`
	StockBajo bool   `form:"stock_bajo"`
	Activo    string `form:"activo"` // "false" = inactivos, "all" = todos, default activos
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID                 string          `json:"id"`
	SKU                string          `json:"sku"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion"`
	Precio             decimal.Decimal `json:"precio"`
	Stock              int             `json:"stock"`
	StockMinimo        int             `json:"stock_minimo"`
	NecesitaReposicion bool            `json:"necesita_reposicion"`
	Activo             bool            `json:"activo"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
