package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto represents a sellable item with its current stock counter.
// Stock never goes negative: every mutation runs through the stock ledger
// (see service.InventarioService) or the sale transaction.
// Products referenced by sale history are never hard-deleted — Desactivar
// sets Activo=false instead.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU         string    `gorm:"column:sku;uniqueIndex;not null"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion string    `gorm:"type:varchar(200)"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	StockMinimo int             `gorm:"not null;default:5"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Producto) TableName() string { return "productos" }

// NecesitaReposicion reports whether the product fell below its reorder
// threshold.
func (p *Producto) NecesitaReposicion() bool { return p.Stock < p.StockMinimo }
