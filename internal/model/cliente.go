package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente represents a customer. Customers referenced by sales cannot be
// deleted (protect-on-delete, enforced in the service layer).
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Apellido  string    `gorm:"not null"`
	Documento string    `gorm:"uniqueIndex;not null"`
	Email     string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
