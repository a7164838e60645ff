// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  RESUMEN: Productos activos | Valor total | Movimientos     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categorías (productos, stock, valor)                │
//	│  TABLA: Stock bajo (código, producto, stock, mínimo)        │
//	│  TABLA: Más movidos                                         │
//	│  TABLA: Reposición sugerida                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/application/inventory"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ inventory.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	company string
}

// NewMarotoReportGenerator construye el generador. company aparece como autor y en el encabezado.
func NewMarotoReportGenerator(company string) *MarotoReportGenerator {
	return &MarotoReportGenerator{company: company}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(report *dto.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(categoryRows(report.Categories)...)
	m.AddRows(lowStockRows(report.LowStock)...)
	m.AddRows(mostMovedRows(report.MostMoved)...)
	m.AddRows(replenishmentRows(report.Replenishment)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(report *dto.InventoryReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.company, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report *dto.InventoryReport) core.Row {
	box := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center}),
		)
	}
	mv := report.Movements
	return row.New(16).Add(
		box("Productos activos", strconv.Itoa(report.ActiveProducts)),
		box("Valor total", formatMoney(report.TotalValue)),
		box("Movimientos (E/S/A)", fmt.Sprintf("%d / %d / %d", mv.Entries, mv.Exits, mv.Adjustments)),
	)
}

// sectionTitle + tableHeader comparten el estilo de todas las tablas.
func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
	})))
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cols ...column) core.Row {
	r := row.New(7)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRow(cols []column, values ...string) core.Row {
	return coloredRow(cols, nil, values...)
}

func coloredRow(cols []column, color *props.Color, values ...string) core.Row {
	r := row.New(6)
	for i, c := range cols {
		r.Add(col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1, Color: color,
		})))
	}
	return r
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 8, Color: colorGray, Top: 1, Left: 1,
	})))
}

func categoryRows(stats []dto.CategoryStats) []core.Row {
	cols := []column{
		{"Categoría", 6, align.Left},
		{"Productos", 2, align.Center},
		{"Stock", 2, align.Center},
		{"Valor", 2, align.Right},
	}
	rows := []core.Row{sectionTitle("Estadísticas por categoría"), tableHeader(cols...)}
	if len(stats) == 0 {
		return append(rows, emptyRow("Sin categorías"))
	}
	for _, s := range stats {
		rows = append(rows, tableRow(cols, s.Name,
			strconv.Itoa(s.TotalProducts), strconv.Itoa(s.TotalStock), formatMoney(s.TotalValue)))
	}
	return rows
}

func lowStockRows(products []entity.Product) []core.Row {
	cols := []column{
		{"Código", 2, align.Left},
		{"Producto", 6, align.Left},
		{"Stock", 2, align.Center},
		{"Mínimo", 2, align.Center},
	}
	rows := []core.Row{sectionTitle("Productos con stock bajo"), tableHeader(cols...)}
	if len(products) == 0 {
		return append(rows, emptyRow("Todos los productos tienen stock suficiente"))
	}
	for _, p := range products {
		var color *props.Color
		if p.Stock == 0 {
			color = colorAlert
		}
		rows = append(rows, coloredRow(cols, color, p.Code, p.Name, strconv.Itoa(p.Stock), strconv.Itoa(p.MinStock)))
	}
	return rows
}

func mostMovedRows(items []dto.MostMovedProduct) []core.Row {
	cols := []column{
		{"#", 1, align.Center},
		{"Producto", 9, align.Left},
		{"Unidades", 2, align.Center},
	}
	rows := []core.Row{sectionTitle("Productos más movidos"), tableHeader(cols...)}
	if len(items) == 0 {
		return append(rows, emptyRow("Sin movimientos"))
	}
	for i, it := range items {
		rows = append(rows, tableRow(cols, strconv.Itoa(i+1), it.Product.Name, strconv.Itoa(it.TotalMovements)))
	}
	return rows
}

func replenishmentRows(items []dto.ReplenishmentSuggestionDTO) []core.Row {
	cols := []column{
		{"Prio.", 1, align.Center},
		{"Producto", 5, align.Left},
		{"Stock", 1, align.Center},
		{"Ideal", 1, align.Center},
		{"Pedir", 1, align.Center},
		{"Costo estimado", 3, align.Right},
	}
	rows := []core.Row{sectionTitle("Reposición sugerida"), tableHeader(cols...)}
	if len(items) == 0 {
		return append(rows, emptyRow("No hay productos para reponer"))
	}
	total := decimal.Zero
	for _, s := range items {
		total = total.Add(s.EstimatedOrderCost)
		rows = append(rows, tableRow(cols,
			strconv.Itoa(s.Priority), s.Code+" "+s.ProductName,
			strconv.Itoa(s.CurrentStock), strconv.Itoa(s.IdealStock), strconv.Itoa(s.SuggestedOrderQty),
			formatMoney(s.EstimatedOrderCost)))
	}
	rows = append(rows, row.New(8).Add(
		col.New(9).Add(text.New("TOTAL PEDIDO:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 2, Color: colorPrimary,
		})),
		col.New(3).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1, Color: colorPrimary,
		})),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney da formato $1.234.567,89 (miles con punto, dos decimales con coma).
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}
