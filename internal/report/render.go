// =============================================================================
// EventAlytics - Report Writers
// =============================================================================
//
// Three writers share the Report structure:
//   - RenderText : terminal dashboard (KPI block, breakdowns, order table)
//   - WriteJSON  : machine-readable export for downstream tooling
//   - WriteXLSX  : workbook with a summary sheet and a per-order sheet
//
// Output file names come from a configurable pattern with {name},
// {timestamp} and {uuid} placeholders.
//
// =============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/eventalytics/eventalytics/internal/currency"
	"github.com/eventalytics/eventalytics/internal/metrics"
)

// =============================================================================
// TEXT RENDERER
// =============================================================================

// RenderText writes the dashboard view of the report to w.
func (r *Report) RenderText(w io.Writer) {
	fmt.Fprintf(w, "=== EventAlytics · %s ===\n\n", r.Source)

	if r.Metrics.TotalOrders == 0 {
		fmt.Fprintln(w, "No hay datos para mostrar.")
		fmt.Fprintln(w, "El archivo parece estar vacío o tiene un formato incorrecto.")
		return
	}

	m := r.Metrics
	fmt.Fprintf(w, "Ingresos totales:      %s\n", currency.FormatEUR(m.TotalRevenue))
	fmt.Fprintf(w, "Total pedidos:         %d\n", m.TotalOrders)
	fmt.Fprintf(w, "Ticket medio:          %s\n", currency.FormatEUR(m.AverageOrderValue))
	fmt.Fprintf(w, "Tarjetas TK:           %d\n", m.TKCardHolders)
	fmt.Fprintf(w, "Necesitan traducción:  %d (%.1f%% del total)\n",
		m.TranslationRequests, percent(m.TranslationRequests, m.TotalOrders))

	writeCounts(w, "Top ciudades", r.Cities)
	writeCounts(w, "Métodos de pago", r.PaymentMethods)
	writeCounts(w, "Pedidos por día", r.Daily)
	writeCounts(w, "Logística idiomas", r.Translation)

	fmt.Fprintf(w, "\nPedidos (%d):\n", len(r.Orders))
	fmt.Fprintf(w, "  %-8s %-12s %-11s %-24s %-20s %12s\n",
		"Pedido", "Estado", "Fecha", "Cliente", "Ciudad", "Importe")
	for _, row := range r.Orders {
		fmt.Fprintf(w, "  %-8s %-12s %-11s %-24s %-20s %12s\n",
			row.ID, row.Status, row.Date, row.CustomerName, row.City, row.TotalDisplay)
	}
}

func writeCounts(w io.Writer, title string, counts []metrics.Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, c := range counts {
		fmt.Fprintf(w, "  %-24s %d\n", c.Name, c.Value)
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// =============================================================================
// JSON WRITER
// =============================================================================

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// =============================================================================
// XLSX WRITER
// =============================================================================

// WriteXLSX writes the report as a workbook with a "Resumen" sheet holding
// the KPIs and breakdowns and a "Pedidos" sheet holding one row per order.
func (r *Report) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Resumen"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	row := 1
	setCell := func(sheet string, col int, values ...interface{}) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+i, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	setCell(summary, 1, "Informe", r.Source)
	row++
	setCell(summary, 1, "Generado", r.GeneratedAt.Format("02/01/2006 15:04"))
	row += 2

	m := r.Metrics
	for _, kpi := range []struct {
		label string
		value interface{}
	}{
		{"Ingresos totales", m.TotalRevenue},
		{"Total pedidos", m.TotalOrders},
		{"Ticket medio", m.AverageOrderValue},
		{"Tarjetas TK", m.TKCardHolders},
		{"Necesitan traducción", m.TranslationRequests},
	} {
		setCell(summary, 1, kpi.label, kpi.value)
		row++
	}

	for _, section := range []struct {
		title  string
		counts []metrics.Count
	}{
		{"Top ciudades", r.Cities},
		{"Métodos de pago", r.PaymentMethods},
		{"Pedidos por día", r.Daily},
		{"Logística idiomas", r.Translation},
	} {
		row++
		setCell(summary, 1, section.title)
		row++
		for _, c := range section.counts {
			setCell(summary, 1, c.Name, c.Value)
			row++
		}
	}

	const detail = "Pedidos"
	if _, err := f.NewSheet(detail); err != nil {
		return fmt.Errorf("failed to create detail sheet: %w", err)
	}

	row = 1
	setCell(detail, 1, "Pedido", "Estado", "Fecha", "Cliente", "Ciudad",
		"Email", "Método de pago", "Importe", "Tarjeta TK", "Traducción", "Consentimiento")
	for _, o := range r.Orders {
		row++
		var total interface{} = o.TotalDisplay
		if o.Total != nil {
			total = *o.Total
		}
		setCell(detail, 1, o.ID, o.Status, o.Date, o.CustomerName, o.City,
			o.Email, o.PaymentMethod, total, boolES(o.HasTKCard),
			boolES(o.NeedsTranslation), o.MarketingConsent)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func boolES(b bool) string {
	if b {
		return "Si"
	}
	return "No"
}

// =============================================================================
// OUTPUT NAMING
// =============================================================================

// OutputFileName builds a report file name from the configured format.
// Placeholders:
//   {name}      - Base name of the source file, without extension
//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//   {uuid}      - A random UUID
//
// The extension is appended if the pattern does not already end with it.
func OutputFileName(format, source, ext string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))

	fileName := format
	fileName = strings.ReplaceAll(fileName, "{name}", name)
	fileName = strings.ReplaceAll(fileName, "{timestamp}", time.Now().Format("20060102_150405"))
	fileName = strings.ReplaceAll(fileName, "{uuid}", uuid.New().String())

	if !strings.HasSuffix(fileName, ext) {
		fileName += ext
	}
	return fileName
}
