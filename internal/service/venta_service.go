package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/infra"
	"inventario/internal/model"
	"inventario/internal/repository"
	"inventario/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, usuario string, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)

	// GenerarFactura renders (or re-renders) the PDF invoice for a committed
	// sale and returns its path on disk.
	GenerarFactura(ctx context.Context, id uuid.UUID) (string, error)
	// EnviarFacturaEmail queues invoice delivery. destino overrides the
	// customer email when non-empty.
	EnviarFacturaEmail(ctx context.Context, id uuid.UUID, destino string) error
}

type ventaService struct {
	repo           repository.VentaRepository
	productoRepo   repository.ProductoRepository
	clienteRepo    repository.ClienteRepository
	movRepo        repository.MovimientoStockRepository
	dispatcher     *worker.Dispatcher
	pdfStoragePath string
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	movRepo repository.MovimientoStockRepository,
	dispatcher *worker.Dispatcher,
	pdfStoragePath string,
) VentaService {
	return &ventaService{
		repo:           repo,
		productoRepo:   productoRepo,
		clienteRepo:    clienteRepo,
		movRepo:        movRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Turns a proposed sale into a committed Venta + Items + stock decrements, or
// rejects it entirely with no partial effect. One ACID transaction:
//   1. Validate items and card fields (card data is never persisted)
//   2. BEGIN TX: draw codigo from ventas_codigo_seq
//   3. Per item, in input order: FOR UPDATE lock on the product row, stock
//      check, freeze precio_unitario, conditional decrement, movimiento salida
//   4. Persist the Venta with the accumulated total and all items
//   5. COMMIT — any failure rolls everything back
//   6. (async) dispatch factura job — best effort, never undoes the sale

func (s *ventaService) RegistrarVenta(ctx context.Context, usuario string, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if usuario == "" {
		usuario = model.UsuarioSistema
	}

	if err := validarVenta(req); err != nil {
		return nil, err
	}

	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.NewValidationMsg("cliente_id", "invalido")
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente %s: %w", req.ClienteID, apierror.ErrNoEncontrado)
	}

	fecha := time.Now()
	if req.Fecha != "" {
		if fecha, err = time.Parse("2006-01-02", req.Fecha); err != nil {
			return nil, apierror.NewValidationMsg("fecha", "formato esperado YYYY-MM-DD")
		}
	}

	type resolvedItem struct {
		productoID uuid.UUID
		nombre     string
		precio     decimal.Decimal
		cantidad   int
		subtotal   decimal.Decimal
	}

	var venta model.Venta
	var resolved []resolvedItem

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		num, err := s.repo.NextCodigoNumero(ctx, tx)
		if err != nil {
			return err
		}
		codigo := fmt.Sprintf("V-%04d", num)

		total := decimal.Zero
		var items []model.ItemVenta
		resolved = resolved[:0]

		for _, item := range req.Items {
			pid, err := uuid.Parse(item.ProductoID)
			if err != nil {
				return apierror.NewValidationMsg("producto_id", "invalido")
			}

			// Lock held until the enclosing transaction commits or rolls
			// back — concurrent commits against the same product serialize.
			p, err := s.productoRepo.FindByIDForUpdateTx(tx, pid)
			if err != nil {
				return fmt.Errorf("producto %s: %w", item.ProductoID, apierror.ErrNoEncontrado)
			}
			if !p.Activo {
				return apierror.NewValidationMsg("producto_id", fmt.Sprintf("%s esta inactivo y no puede venderse", p.Nombre))
			}
			if p.Stock < item.Cantidad {
				return &apierror.StockInsuficienteError{Producto: p.Nombre, Solicitado: item.Cantidad, Disponible: p.Stock}
			}

			// Unit price frozen at sale time; later product price changes
			// never touch this item.
			precio := p.Precio
			subtotal := precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
			total = total.Add(subtotal)

			if err := s.productoRepo.DescontarStockTx(tx, pid, item.Cantidad); err != nil {
				if errors.Is(err, apierror.ErrStockInsuficiente) {
					return &apierror.StockInsuficienteError{Producto: p.Nombre, Solicitado: item.Cantidad, Disponible: p.Stock}
				}
				return err
			}

			mov := model.MovimientoStock{
				ProductoID: pid,
				Tipo:       model.MovimientoSalida,
				Cantidad:   item.Cantidad,
				Motivo:     fmt.Sprintf("Venta %s", codigo),
				Usuario:    usuario,
			}
			if err := s.movRepo.CreateTx(tx, &mov); err != nil {
				return err
			}

			items = append(items, model.ItemVenta{
				ProductoID:     pid,
				Cantidad:       item.Cantidad,
				PrecioUnitario: precio,
				Subtotal:       subtotal,
			})
			resolved = append(resolved, resolvedItem{
				productoID: pid,
				nombre:     p.Nombre,
				precio:     precio,
				cantidad:   item.Cantidad,
				subtotal:   subtotal,
			})
		}

		venta = model.Venta{
			Codigo:    codigo,
			ClienteID: clienteID,
			Fecha:     fecha,
			MedioPago: req.MedioPago,
			Total:     total,
			Usuario:   usuario,
			Items:     items,
		}
		return s.repo.Create(ctx, tx, &venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async invoice job: PDF + optional email. Failure here is reported as a
	// warning, never rolled back against the committed sale.
	if s.dispatcher != nil {
		payload := worker.FacturaJobPayload{VentaID: venta.ID.String(), ClienteEmail: cliente.Email}
		if err := s.dispatcher.EnqueueFactura(ctx, payload); err != nil {
			log.Warn().Err(err).Str("venta", venta.Codigo).Msg("no se pudo encolar la factura")
		}
	}

	resp := ventaToResponse(&venta)
	resp.Cliente = fmt.Sprintf("%s, %s (%s)", cliente.Apellido, cliente.Nombre, cliente.Documento)
	for i, r := range resolved {
		resp.Items[i].Producto = r.nombre
	}
	return resp, nil
}

// validarVenta enforces the input rules before any persistence attempt.
func validarVenta(req dto.RegistrarVentaRequest) error {
	if len(req.Items) == 0 {
		return apierror.NewValidationMsg("items", "la venta debe tener al menos un item")
	}
	for _, item := range req.Items {
		if item.ProductoID == "" {
			return apierror.NewValidationMsg("producto_id", "falta seleccionar un producto en uno de los items")
		}
		if item.Cantidad <= 0 {
			return apierror.NewValidationMsg("cantidad", "debe ser mayor a cero")
		}
	}

	// Card payments require the card fields to be present. They act purely
	// as a validation gate: nothing card-related is ever stored.
	if req.MedioPago == model.MedioPagoCredito || req.MedioPago == model.MedioPagoDebito {
		fields := make(map[string]string)
		if req.NumeroTarjeta == "" {
			fields["numero_tarjeta"] = "debe ingresar el numero de tarjeta"
		}
		if req.FechaVencimiento == "" {
			fields["fecha_vencimiento"] = "debe ingresar la fecha de vencimiento"
		}
		if req.CodigoSeguridad == "" {
			fields["codigo_seguridad"] = "debe ingresar el codigo de seguridad"
		}
		if len(fields) > 0 {
			return apierror.NewValidation(fields)
		}
	}
	return nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta %s: %w", id, apierror.ErrNoEncontrado)
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *ventaService) GenerarFactura(ctx context.Context, id uuid.UUID) (string, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("venta %s: %w", id, apierror.ErrNoEncontrado)
	}
	return infra.GenerateFacturaPDF(venta, s.pdfStoragePath)
}

func (s *ventaService) EnviarFacturaEmail(ctx context.Context, id uuid.UUID, destino string) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("venta %s: %w", id, apierror.ErrNoEncontrado)
	}

	if destino == "" && venta.Cliente != nil {
		destino = venta.Cliente.Email
	}
	if destino == "" {
		return apierror.NewValidationMsg("destino", "el cliente no tiene email registrado")
	}

	if s.dispatcher == nil {
		return fmt.Errorf("no hay cola de trabajos disponible")
	}
	payload := worker.FacturaJobPayload{VentaID: venta.ID.String(), ClienteEmail: destino}
	return s.dispatcher.EnqueueFactura(ctx, payload)
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.ItemVentaResponse{
			Producto:       nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		})
	}
	cliente := ""
	if v.Cliente != nil {
		cliente = fmt.Sprintf("%s, %s (%s)", v.Cliente.Apellido, v.Cliente.Nombre, v.Cliente.Documento)
	}
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		Codigo:    v.Codigo,
		Cliente:   cliente,
		Fecha:     v.Fecha.Format("2006-01-02"),
		MedioPago: v.MedioPago,
		Items:     items,
		Total:     v.Total,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
