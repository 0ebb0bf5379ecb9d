package service

import (
	"context"
	"errors"
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventarioFixture struct {
	productoRepo *stubProductoRepo
	movRepo      *stubMovimientoRepo
	svc          InventarioService
}

func newInventarioFixture() *inventarioFixture {
	f := &inventarioFixture{
		productoRepo: newStubProductoRepo(),
		movRepo:      newStubMovimientoRepo(),
	}
	f.svc = NewInventarioService(f.productoRepo, f.movRepo)
	return f
}

func (f *inventarioFixture) addProducto(nombre string, stock, stockMinimo int) *model.Producto {
	p := &model.Producto{
		SKU:         "SKU-" + nombre,
		Nombre:      nombre,
		Precio:      decimal.RequireFromString("10.00"),
		Stock:       stock,
		StockMinimo: stockMinimo,
		Activo:      true,
	}
	f.productoRepo.mu.Lock()
	f.productoRepo.add(p)
	f.productoRepo.mu.Unlock()
	return p
}

func TestRegistrarMovimientoEntrada(t *testing.T) {
	f := newInventarioFixture()
	p := f.addProducto("Yerba", 10, 5)

	resp, err := f.svc.RegistrarMovimiento(context.Background(), p.ID, dto.RegistrarMovimientoRequest{
		Tipo:     model.MovimientoEntrada,
		Cantidad: 7,
		Motivo:   "Reposicion proveedor",
	}, "deposito1")
	require.NoError(t, err)

	assert.Equal(t, model.MovimientoEntrada, resp.Tipo)
	assert.Equal(t, 7, resp.Cantidad)
	assert.Equal(t, "deposito1", resp.Usuario)

	actual, err := f.productoRepo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, actual.Stock)
	assert.Len(t, f.movRepo.porProducto(p.ID), 1)
}

func TestRegistrarMovimientoSalida(t *testing.T) {
	f := newInventarioFixture()
	p := f.addProducto("Yerba", 10, 5)

	_, err := f.svc.RegistrarMovimiento(context.Background(), p.ID, dto.RegistrarMovimientoRequest{
		Tipo:     model.MovimientoSalida,
		Cantidad: 4,
		Motivo:   "Rotura",
	}, "")
	require.NoError(t, err)

	actual, err := f.productoRepo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, actual.Stock)

	movs := f.movRepo.porProducto(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, model.UsuarioSistema, movs[0].Usuario, "sin usuario explicito actua 'Sistema'")
}

func TestRegistrarMovimientoSalidaInsuficiente(t *testing.T) {
	f := newInventarioFixture()
	p := f.addProducto("Yerba", 3, 5)

	_, err := f.svc.RegistrarMovimiento(context.Background(), p.ID, dto.RegistrarMovimientoRequest{
		Tipo:     model.MovimientoSalida,
		Cantidad: 10,
	}, "deposito1")
	require.Error(t, err)

	var stockErr *apierror.StockInsuficienteError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 3, stockErr.Disponible)

	actual, findErr := f.productoRepo.FindByID(context.Background(), p.ID)
	require.NoError(t, findErr)
	assert.Equal(t, 3, actual.Stock)
	assert.Empty(t, f.movRepo.porProducto(p.ID))
}

func TestRegistrarMovimientoTipoInvalido(t *testing.T) {
	f := newInventarioFixture()
	p := f.addProducto("Yerba", 10, 5)

	_, err := f.svc.RegistrarMovimiento(context.Background(), p.ID, dto.RegistrarMovimientoRequest{
		Tipo:     "prestamo",
		Cantidad: 1,
	}, "x")
	var valErr *apierror.ValidationError
	require.True(t, errors.As(err, &valErr))
}

func TestRegistrarMovimientoProductoInexistente(t *testing.T) {
	f := newInventarioFixture()
	_, err := f.svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoRequest{
		Tipo:     model.MovimientoEntrada,
		Cantidad: 1,
	}, "x")
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
}

func TestAjustarStockHaciaAbajo(t *testing.T) {
	f := newInventarioFixture()
	p := f.addProducto("Yerba", 10, 5)

	resp, err := f.svc.AjustarStock(context.Background(), p.ID, dto.AjusteStockRequest{
		NuevaCantidad: 6,
		Motivo:        "Conteo fisico",
	}, "auditor")
	require.NoError(t, err)

	assert.True(t, resp.Ajustado)
	assert.Equal(t, 10, resp.StockAnterior)
	assert.Equal(t, 6, resp.StockNuevo)
	assert.Equal(t, model.MovimientoSalida, resp.Tipo)
	assert.Equal(t, 4, resp.Cantidad)

	movs := f.movRepo.porProducto(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimientoSalida, movs[0].Tipo)
	assert.Equal(t, 4, movs[0].Cantidad)
	assert.Equal(t, "Conteo fisico", movs[0].Motivo)
}

func TestAjustarStockHaciaArriba(t *testing.T) {
	f := newInventarioFixture()
	p := f.addProducto("Yerba", 0, 5)

	resp, err := f.svc.AjustarStock(context.Background(), p.ID, dto.AjusteStockRequest{
		NuevaCantidad: 15,
	}, "")
	require.NoError(t, err)

	assert.True(t, resp.Ajustado)
	assert.Equal(t, model.MovimientoEntrada, resp.Tipo)
	assert.Equal(t, 15, resp.Cantidad)

	movs := f.movRepo.porProducto(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, "Ajuste de stock", movs[0].Motivo, "motivo por defecto")
}

func TestAjustarStockSinCambioNoRegistraNada(t *testing.T) {
	f := newInventarioFixture()
	p := f.addProducto("Yerba", 10, 5)

	resp, err := f.svc.AjustarStock(context.Background(), p.ID, dto.AjusteStockRequest{
		NuevaCantidad: 10,
	}, "auditor")
	require.NoError(t, err)

	assert.False(t, resp.Ajustado)
	assert.Equal(t, 10, resp.StockAnterior)
	assert.Equal(t, 10, resp.StockNuevo)
	assert.Empty(t, f.movRepo.porProducto(p.ID))
}

func TestStockBajoOrdenaPorUrgencia(t *testing.T) {
	f := newInventarioFixture()
	f.addProducto("Casi", 4, 5)
	f.addProducto("Critico", 0, 5)
	f.addProducto("Sano", 50, 5)
	inactivo := f.addProducto("Inactivo", 0, 5)
	require.NoError(t, f.productoRepo.Desactivar(context.Background(), inactivo.ID))

	resp, err := f.svc.StockBajo(context.Background())
	require.NoError(t, err)

	require.Len(t, resp, 2)
	assert.Equal(t, "Critico", resp[0].Nombre)
	assert.Equal(t, "Casi", resp[1].Nombre)
	for _, p := range resp {
		assert.True(t, p.NecesitaReposicion)
	}
}

func TestListarMovimientosFiltraPorProductoYTipo(t *testing.T) {
	f := newInventarioFixture()
	p1 := f.addProducto("Yerba", 10, 5)
	p2 := f.addProducto("Cafe", 10, 5)

	_, err := f.svc.RegistrarMovimiento(context.Background(), p1.ID, dto.RegistrarMovimientoRequest{Tipo: model.MovimientoEntrada, Cantidad: 1}, "x")
	require.NoError(t, err)
	_, err = f.svc.RegistrarMovimiento(context.Background(), p1.ID, dto.RegistrarMovimientoRequest{Tipo: model.MovimientoSalida, Cantidad: 1}, "x")
	require.NoError(t, err)
	_, err = f.svc.RegistrarMovimiento(context.Background(), p2.ID, dto.RegistrarMovimientoRequest{Tipo: model.MovimientoEntrada, Cantidad: 1}, "x")
	require.NoError(t, err)

	resp, err := f.svc.ListarMovimientos(context.Background(), repository.MovimientoStockFilter{ProductoID: &p1.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)

	resp, err = f.svc.ListarMovimientos(context.Background(), repository.MovimientoStockFilter{Tipo: model.MovimientoEntrada})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
}
