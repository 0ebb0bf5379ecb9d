// Package apierror provides standardized error response structures for the API
// plus the business error taxonomy shared by services and handlers.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ── Business error taxonomy ──────────────────────────────────────────────────

var (
	// ErrNoEncontrado marks a missing producto/cliente/venta — mapped to 404.
	ErrNoEncontrado = errors.New("registro no encontrado")

	// ErrPermisoDenegado marks an authorization failure — mapped to 403,
	// always before any state change.
	ErrPermisoDenegado = errors.New("permisos insuficientes")

	// ErrStockInsuficiente is the bare sentinel returned by the conditional
	// stock decrement. Services wrap it in StockInsuficienteError to name
	// the offending product.
	ErrStockInsuficiente = errors.New("stock insuficiente")

	// ErrClienteConVentas blocks deleting a customer referenced by sales.
	ErrClienteConVentas = errors.New("el cliente tiene ventas registradas y no puede eliminarse")

	// ErrProductoReferenciado blocks hard-deleting a product referenced by
	// sale history; products are deactivated instead.
	ErrProductoReferenciado = errors.New("el producto esta referenciado por ventas y no puede eliminarse")
)

// ValidationError wraps one or more field-level input errors.
// It is raised before any persistence attempt; the request is re-presented
// for correction.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// NewValidationMsg builds a single-field validation error.
func NewValidationMsg(field, msg string) *ValidationError {
	return NewValidation(map[string]string{field: msg})
}

func (e *ValidationError) Error() string {
	for f, msg := range e.Fields {
		return fmt.Sprintf("%s: %s — %s", e.Detail, f, msg)
	}
	return e.Detail
}

// StockInsuficienteError aborts a whole sale transaction, naming the product
// that could not cover the requested quantity.
type StockInsuficienteError struct {
	Producto   string
	Solicitado int
	Disponible int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s (solicitado %d, disponible %d)",
		e.Producto, e.Solicitado, e.Disponible)
}

func (e *StockInsuficienteError) Unwrap() error { return ErrStockInsuficiente }
