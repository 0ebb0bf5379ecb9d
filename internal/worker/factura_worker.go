package worker

// factura_worker.go
// Processes invoice jobs from QueueFactura: generates the PDF for a committed
// sale and, when the customer has an email on file, enqueues delivery.
// The sale is already committed when this runs — nothing here can undo it.

import (
	"context"
	"encoding/json"
	"fmt"

	"inventario/internal/infra"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FacturaJobPayload is the job envelope sent to QueueFactura.
type FacturaJobPayload struct {
	VentaID      string `json:"venta_id"`
	ClienteEmail string `json:"cliente_email,omitempty"`
}

// FacturaWorker generates invoice PDFs for committed sales.
type FacturaWorker struct {
	ventaRepo      repository.VentaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewFacturaWorker(ventaRepo repository.VentaRepository, dispatcher *Dispatcher, pdfStoragePath string) *FacturaWorker {
	return &FacturaWorker{
		ventaRepo:      ventaRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single invoice job:
//  1. Parse FacturaJobPayload from the job envelope
//  2. Fetch the Venta (with items and cliente) from the DB
//  3. Generate the PDF invoice
//  4. Enqueue an email job when the customer left an email address
func (w *FacturaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload FacturaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("factura_worker: invalid payload")
		return
	}

	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("factura_worker: invalid venta_id")
		return
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("factura_worker: venta not found")
		return
	}

	pdfPath, err := infra.GenerateFacturaPDF(venta, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("venta", venta.Codigo).Msg("factura_worker: PDF generation failed")
		return
	}
	log.Info().Str("pdf", pdfPath).Str("venta", venta.Codigo).Msg("factura_worker: PDF generated")

	if payload.ClienteEmail == "" {
		return
	}

	emailJob := EmailJobPayload{
		ToEmail: payload.ClienteEmail,
		Subject: fmt.Sprintf("Factura %s", venta.Codigo),
		Body:    fmt.Sprintf("Adjunto encontrarás la factura de tu compra.\nTotal: $%s", venta.Total.StringFixed(2)),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", payload.ClienteEmail).Msg("factura_worker: failed to enqueue email")
		return
	}
	log.Info().Str("email", payload.ClienteEmail).Str("venta", venta.Codigo).Msg("factura_worker: email job enqueued")
}
