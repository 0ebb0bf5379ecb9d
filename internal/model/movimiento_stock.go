package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement kinds. An ajuste is recorded as the entrada/salida derived from
// the sign of the applied delta; the constant exists for manual corrections
// loaded from legacy data.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
	MovimientoAjuste  = "ajuste"
)

// UsuarioSistema is the actor recorded when no authenticated user is present.
const UsuarioSistema = "Sistema"

// MovimientoStock registra cada cambio de stock de un producto.
// Los registros son inmutables — nunca se actualizan ni se eliminan.
type MovimientoStock struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo       string    `gorm:"type:varchar(10);not null"`
	// Cantidad is always positive; Tipo carries the direction.
	Cantidad  int    `gorm:"not null"`
	Motivo    string `gorm:"type:varchar(200)"`
	Usuario   string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (MovimientoStock) TableName() string { return "movimientos_stock" }
