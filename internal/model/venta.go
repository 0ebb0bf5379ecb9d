package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted for a sale. Card methods require card fields at
// validation time; those fields are never persisted.
const (
	MedioPagoEfectivo      = "efectivo"
	MedioPagoCredito       = "credito"
	MedioPagoDebito        = "debito"
	MedioPagoTransferencia = "transferencia"
)

// Venta is a committed sale. It is created atomically with its items; Total
// is always the sum of the item subtotals and is never mutated afterwards.
// Codigo comes from the ventas_codigo_seq Postgres sequence ("V-0001").
type Venta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo    string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index"`
	Fecha     time.Time `gorm:"type:date;not null"`
	MedioPago string    `gorm:"type:varchar(20);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Usuario   string          `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time

	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Items   []ItemVenta `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "ventas" }

// ItemVenta is one line of a sale. PrecioUnitario is captured at sale time —
// a historical record, not a live reference to the product price.
type ItemVenta struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Cantidad       int       `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:RESTRICT"`
}

func (ItemVenta) TableName() string { return "item_ventas" }
