package service

import (
	"context"
	"fmt"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventarioService is the stock ledger: it owns the product stock counter
// and the append-only audit trail explaining every change. The counter and
// the trail always move together — never one without the other.
type InventarioService interface {
	RegistrarMovimiento(ctx context.Context, productoID uuid.UUID, req dto.RegistrarMovimientoRequest, usuario string) (*dto.MovimientoStockResponse, error)
	AjustarStock(ctx context.Context, productoID uuid.UUID, req dto.AjusteStockRequest, usuario string) (*dto.AjusteStockResponse, error)
	StockBajo(ctx context.Context) ([]dto.ProductoResponse, error)
	ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) (*dto.MovimientoListResponse, error)
}

type inventarioService struct {
	productoRepo   repository.ProductoRepository
	movimientoRepo repository.MovimientoStockRepository
}

func NewInventarioService(productoRepo repository.ProductoRepository, movimientoRepo repository.MovimientoStockRepository) InventarioService {
	return &inventarioService{productoRepo: productoRepo, movimientoRepo: movimientoRepo}
}

// RegistrarMovimiento applies a manual entrada/salida to a product and
// appends the matching audit entry, as one atomic unit of work.
// A salida that would drive stock negative fails with StockInsuficienteError
// and leaves no trace.
func (s *inventarioService) RegistrarMovimiento(ctx context.Context, productoID uuid.UUID, req dto.RegistrarMovimientoRequest, usuario string) (*dto.MovimientoStockResponse, error) {
	if req.Cantidad <= 0 {
		return nil, apierror.NewValidationMsg("cantidad", "debe ser mayor a cero")
	}
	if usuario == "" {
		usuario = model.UsuarioSistema
	}

	var mov model.MovimientoStock
	var nombre string
	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		p, err := s.productoRepo.FindByIDForUpdateTx(tx, productoID)
		if err != nil {
			return fmt.Errorf("producto %s: %w", productoID, apierror.ErrNoEncontrado)
		}
		nombre = p.Nombre

		switch req.Tipo {
		case model.MovimientoEntrada:
			if err := s.productoRepo.AjustarStockTx(tx, productoID, req.Cantidad); err != nil {
				return err
			}
		case model.MovimientoSalida:
			if p.Stock < req.Cantidad {
				return &apierror.StockInsuficienteError{Producto: p.Nombre, Solicitado: req.Cantidad, Disponible: p.Stock}
			}
			if err := s.productoRepo.DescontarStockTx(tx, productoID, req.Cantidad); err != nil {
				return err
			}
		default:
			return apierror.NewValidationMsg("tipo", "debe ser entrada o salida")
		}

		mov = model.MovimientoStock{
			ProductoID: productoID,
			Tipo:       req.Tipo,
			Cantidad:   req.Cantidad,
			Motivo:     req.Motivo,
			Usuario:    usuario,
		}
		return s.movimientoRepo.CreateTx(tx, &mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.MovimientoStockResponse{
		ID:       mov.ID.String(),
		Producto: nombre,
		Tipo:     mov.Tipo,
		Cantidad: mov.Cantidad,
		Motivo:   mov.Motivo,
		Usuario:  mov.Usuario,
	}, nil
}

// AjustarStock sets the stock counter to an absolute value. The movement kind
// is derived from the delta sign (positive → entrada, negative → salida).
// When the requested quantity equals the current stock nothing is recorded
// and the no-op outcome is reported to the caller.
func (s *inventarioService) AjustarStock(ctx context.Context, productoID uuid.UUID, req dto.AjusteStockRequest, usuario string) (*dto.AjusteStockResponse, error) {
	if req.NuevaCantidad < 0 {
		return nil, apierror.NewValidationMsg("nueva_cantidad", "no puede ser negativa")
	}
	if usuario == "" {
		usuario = model.UsuarioSistema
	}
	motivo := req.Motivo
	if motivo == "" {
		motivo = "Ajuste de stock"
	}

	resp := &dto.AjusteStockResponse{}
	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		p, err := s.productoRepo.FindByIDForUpdateTx(tx, productoID)
		if err != nil {
			return fmt.Errorf("producto %s: %w", productoID, apierror.ErrNoEncontrado)
		}

		delta := req.NuevaCantidad - p.Stock
		resp.StockAnterior = p.Stock
		resp.StockNuevo = req.NuevaCantidad
		if delta == 0 {
			return nil
		}

		tipo := model.MovimientoEntrada
		cantidad := delta
		if delta < 0 {
			tipo = model.MovimientoSalida
			cantidad = -delta
		}

		if err := s.productoRepo.AjustarStockTx(tx, productoID, delta); err != nil {
			return err
		}
		mov := model.MovimientoStock{
			ProductoID: productoID,
			Tipo:       tipo,
			Cantidad:   cantidad,
			Motivo:     motivo,
			Usuario:    usuario,
		}
		if err := s.movimientoRepo.CreateTx(tx, &mov); err != nil {
			return err
		}

		resp.Ajustado = true
		resp.Tipo = tipo
		resp.Cantidad = cantidad
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return resp, nil
}

// StockBajo returns products under their reorder threshold, most urgent first.
func (s *inventarioService) StockBajo(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productoRepo.StockBajo(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		result = append(result, *productoToResponse(&productos[i]))
	}
	return result, nil
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) (*dto.MovimientoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	movimientos, total, err := s.movimientoRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoStockResponse, 0, len(movimientos))
	for _, m := range movimientos {
		nombre := ""
		if m.Producto != nil {
			nombre = m.Producto.Nombre
		}
		items = append(items, dto.MovimientoStockResponse{
			ID:        m.ID.String(),
			Producto:  nombre,
			Tipo:      m.Tipo,
			Cantidad:  m.Cantidad,
			Motivo:    m.Motivo,
			Usuario:   m.Usuario,
			CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return &dto.MovimientoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
