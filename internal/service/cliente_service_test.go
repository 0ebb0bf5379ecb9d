package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clienteFixture struct {
	repo      *stubClienteRepo
	ventaRepo *stubVentaRepo
	svc       ClienteService
}

func newClienteFixture() *clienteFixture {
	f := &clienteFixture{
		repo:      newStubClienteRepo(),
		ventaRepo: newStubVentaRepo(),
	}
	f.svc = NewClienteService(f.repo, f.ventaRepo)
	return f
}

func TestCrearCliente(t *testing.T) {
	f := newClienteFixture()

	resp, err := f.svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:    "Maria",
		Apellido:  "Gomez",
		Documento: "30111222",
		Email:     "maria@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "30111222", resp.Documento)
}

func TestCrearClienteDocumentoDuplicado(t *testing.T) {
	f := newClienteFixture()
	req := dto.CrearClienteRequest{
		Nombre:    "Maria",
		Apellido:  "Gomez",
		Documento: "30111222",
		Email:     "maria@example.com",
	}
	_, err := f.svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.Crear(context.Background(), req)
	var valErr *apierror.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Fields, "documento")
}

func TestActualizarClienteParcial(t *testing.T) {
	f := newClienteFixture()
	creado, err := f.svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:    "Maria",
		Apellido:  "Gomez",
		Documento: "30111222",
		Email:     "maria@example.com",
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	nuevoEmail := "maria.gomez@example.com"
	resp, err := f.svc.Actualizar(context.Background(), id, dto.ActualizarClienteRequest{Email: &nuevoEmail})
	require.NoError(t, err)

	assert.Equal(t, nuevoEmail, resp.Email)
	assert.Equal(t, "Gomez", resp.Apellido)
	assert.Equal(t, "30111222", resp.Documento, "el documento nunca cambia")
}

func TestEliminarClienteSinVentas(t *testing.T) {
	f := newClienteFixture()
	creado, err := f.svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:    "Maria",
		Apellido:  "Gomez",
		Documento: "30111222",
		Email:     "maria@example.com",
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, f.svc.Eliminar(context.Background(), id))
	_, err = f.svc.ObtenerPorID(context.Background(), id)
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
}

func TestEliminarClienteConVentasBloqueado(t *testing.T) {
	f := newClienteFixture()
	creado, err := f.svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:    "Maria",
		Apellido:  "Gomez",
		Documento: "30111222",
		Email:     "maria@example.com",
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	venta := &model.Venta{
		Codigo:    "V-0001",
		ClienteID: id,
		Fecha:     time.Now(),
		MedioPago: model.MedioPagoEfectivo,
		Total:     decimal.RequireFromString("10.00"),
		Usuario:   "vendedor1",
	}
	require.NoError(t, f.ventaRepo.Create(context.Background(), nil, venta))

	err = f.svc.Eliminar(context.Background(), id)
	assert.True(t, errors.Is(err, apierror.ErrClienteConVentas))

	// El cliente sigue existiendo
	_, err = f.svc.ObtenerPorID(context.Background(), id)
	assert.NoError(t, err)
}

func TestEliminarClienteInexistente(t *testing.T) {
	f := newClienteFixture()
	err := f.svc.Eliminar(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
}
