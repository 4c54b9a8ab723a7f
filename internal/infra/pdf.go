package infra

// pdf.go — daily register report rendered with go-pdf/fpdf. One A5 page:
// header with the date, the reconciliation block (opening float, sales
// total, cash in/out, expected net), the per-method breakdown, and the
// day's ledger rows.

import (
	"bytes"
	"fmt"

	"licoreria/internal/dto"
	"licoreria/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerarReporteCajaPDF renders the daily reconciliation as a PDF document
// and returns the raw bytes, ready to stream to the client.
func GenerarReporteCajaPDF(r *dto.ReporteCajaResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Licorería — Caja", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Arqueo del "+r.Fecha, "", 1, "C", false, 0, "")
	if r.Cerrada {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "DIA CERRADO", "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(3)

	// ── Reconciliation ───────────────────────────────────────────────────────
	linea := func(etiqueta, valor string, negrita bool) {
		estilo := ""
		if negrita {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, 9)
		pdf.CellFormat(contentW*0.6, 6, etiqueta, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, valor, "", 1, "R", false, 0, "")
	}

	linea("Apertura:", "$"+r.Apertura.StringFixed(2), false)
	linea("Total vendido:", "$"+r.TotalVentas.StringFixed(2), false)
	linea("Efectivo recibido:", "$"+r.EfectivoRecibido.StringFixed(2), false)
	linea("Efectivo devuelto:", "-$"+r.EfectivoDevuelto.StringFixed(2), false)
	linea("Efectivo neto esperado:", "$"+r.EfectivoNeto.StringFixed(2), true)
	pdf.Ln(2)

	// ── Per-method breakdown ─────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, "Ventas por método", "B", 1, "L", false, 0, "")
	for _, metodo := range []string{model.MetodoEfectivo, model.MetodoTransferencia, model.MetodoFiado} {
		linea(metodo+":", "$"+r.VentasPorMetodo[metodo].StringFixed(2), false)
	}
	pdf.Ln(3)

	// ── Ledger rows ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	col1 := contentW * 0.44
	col2 := contentW * 0.12
	col3 := contentW * 0.22
	col4 := contentW * 0.22
	pdf.CellFormat(col1, 5, "Detalle", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Método", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, m := range r.Movimientos {
		etiqueta := m.Etiqueta
		if len(etiqueta) > 28 {
			etiqueta = etiqueta[:27] + "…"
		}
		pdf.CellFormat(col1, 5, etiqueta, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", m.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, m.Metodo, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+m.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if len(r.Movimientos) == 0 {
		pdf.CellFormat(contentW, 5, "Sin movimientos", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
