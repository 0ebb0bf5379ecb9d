package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=2,max=100"`
	Apellido  string `json:"apellido"  validate:"required,min=2,max=100"`
	Documento string `json:"documento" validate:"required,min=6,max=20"`
	Email     string `json:"email"     validate:"required,email"`
	Telefono  string `json:"telefono"  validate:"max=20"`
	Direccion string `json:"direccion"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=100"`
	Apellido  *string `json:"apellido"  validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Direccion *string `json:"direccion"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ClienteFilter: Q is a free-text OR search over documento, nombre y apellido.
type ClienteFilter struct {
	Q     string `form:"q"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
