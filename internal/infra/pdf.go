package infra

// pdf.go — invoice PDF generation using go-pdf/fpdf.
// Generates an A4 factura with business header, sale code and date, customer
// block, item table (product, quantity, unit price, subtotal) and a bold total.
// The output file is saved to storagePath/factura_{codigo}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"inventario/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateFacturaPDF writes the invoice for a committed Venta and returns the
// absolute path of the generated file. storagePath is created if missing.
func GenerateFacturaPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("factura_%s.pdf", venta.Codigo)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "Inventario", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Comprobante de venta", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Sale info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW/2, 7, fmt.Sprintf("Factura %s", venta.Codigo), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 7, venta.Fecha.Format("02/01/2006"), "", 1, "R", false, 0, "")

	if venta.Cliente != nil {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW, 6, fmt.Sprintf("Cliente: %s, %s", venta.Cliente.Apellido, venta.Cliente.Nombre), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 6, fmt.Sprintf("Documento: %s", venta.Cliente.Documento), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Medio de pago: %s", venta.MedioPago), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.44 // product name
	col2 := contentW * 0.12 // qty
	col3 := contentW * 0.22 // unit price
	col4 := contentW * 0.22 // subtotal

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "P. Unitario", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range venta.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		if len(nombre) > 40 {
			nombre = nombre[:39] + "…"
		}
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+item.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(contentW, 5, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
