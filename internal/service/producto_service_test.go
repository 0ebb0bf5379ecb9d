package service

import (
	"context"
	"errors"
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productoFixture struct {
	repo    *stubProductoRepo
	movRepo *stubMovimientoRepo
	svc     ProductoService
}

func newProductoFixture() *productoFixture {
	f := &productoFixture{
		repo:    newStubProductoRepo(),
		movRepo: newStubMovimientoRepo(),
	}
	f.svc = NewProductoService(f.repo, f.movRepo)
	return f
}

func TestCrearProductoConStockInicial(t *testing.T) {
	f := newProductoFixture()

	resp, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
		SKU:         "YER-001",
		Nombre:      "Yerba",
		Precio:      decimal.RequireFromString("5.00"),
		Stock:       12,
		StockMinimo: 5,
	}, "admin")
	require.NoError(t, err)

	assert.True(t, resp.Activo)
	assert.Equal(t, 12, resp.Stock)
	assert.False(t, resp.NecesitaReposicion)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	movs := f.movRepo.porProducto(id)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimientoEntrada, movs[0].Tipo)
	assert.Equal(t, 12, movs[0].Cantidad)
	assert.Equal(t, "Stock inicial", movs[0].Motivo)
	assert.Equal(t, "admin", movs[0].Usuario)
}

func TestCrearProductoSinStockNoRegistraMovimiento(t *testing.T) {
	f := newProductoFixture()

	resp, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
		SKU:    "CAF-001",
		Nombre: "Cafe",
		Precio: decimal.RequireFromString("8.00"),
	}, "")
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Empty(t, f.movRepo.porProducto(id))
}

func TestCrearProductoPrecioInvalido(t *testing.T) {
	f := newProductoFixture()

	for _, precio := range []string{"0", "-1.50"} {
		_, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
			SKU:    "X",
			Nombre: "X",
			Precio: decimal.RequireFromString(precio),
		}, "")
		var valErr *apierror.ValidationError
		require.True(t, errors.As(err, &valErr), "precio %s", precio)
	}
}

func TestActualizarProductoParcial(t *testing.T) {
	f := newProductoFixture()
	creado, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
		SKU:         "YER-001",
		Nombre:      "Yerba",
		Descripcion: "500g",
		Precio:      decimal.RequireFromString("5.00"),
		Stock:       10,
		StockMinimo: 5,
	}, "admin")
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	nuevoPrecio := decimal.RequireFromString("6.50")
	resp, err := f.svc.Actualizar(context.Background(), id, dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.True(t, resp.Precio.Equal(nuevoPrecio))
	assert.Equal(t, "Yerba", resp.Nombre, "los campos no enviados quedan igual")
	assert.Equal(t, 10, resp.Stock, "el stock nunca se toca por este camino")
}

func TestDesactivarYReactivarProducto(t *testing.T) {
	f := newProductoFixture()
	creado, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
		SKU:    "YER-001",
		Nombre: "Yerba",
		Precio: decimal.RequireFromString("5.00"),
	}, "admin")
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, f.svc.Desactivar(context.Background(), id))
	p, err := f.repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, p.Activo)

	require.NoError(t, f.svc.Reactivar(context.Background(), id))
	p, err = f.repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, p.Activo)
}

func TestObtenerProductoInexistente(t *testing.T) {
	f := newProductoFixture()
	_, err := f.svc.ObtenerPorID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
}
