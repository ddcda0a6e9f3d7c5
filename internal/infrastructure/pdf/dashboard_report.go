// Package pdf genera el reporte del dashboard del back-office con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título                    │  fecha de generación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingresos | Pendientes | Productos | Clientes          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PEDIDOS RECIENTES: N° | Cliente | Monto | Estado | Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK BAJO: Producto | SKU | Stock                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/ecommerce-backoffice/internal/application/analytics"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
)

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

const dateLayout = "Jan 2, 2006, 3:04:05 PM"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador; title encabeza cada reporte.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	return &MarotoReportGenerator{title: nonEmpty(title, "Dashboard")}
}

// DashboardReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) DashboardReport(_ context.Context, s *dto.DashboardSummaryDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("PEDIDOS RECIENTES"))
	m.AddRows(tableHeaderRow([]string{"Order #", "Customer ID", "Amount", "Status", "Order Date"}, []int{2, 2, 2, 2, 4}))
	m.AddRows(recentOrderRows(s.RecentOrders)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow(fmt.Sprintf("STOCK BAJO (<= %d)", s.LowStockThreshold)))
	m.AddRows(tableHeaderRow([]string{"Product", "SKU", "Stock"}, []int{6, 4, 2}))
	m.AddRows(lowStockRows(s.LowStockProducts)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(s *dto.DashboardSummaryDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+s.GeneratedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// kpiRow: cuatro cifras principales.
func kpiRow(s *dto.DashboardSummaryDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 6}),
		)
	}
	return row.New(18).Add(
		kpi("Total Revenue", formatUSD(s.TotalRevenue)),
		kpi("Pending Orders", strconv.FormatInt(s.PendingOrders, 10)),
		kpi("Products", strconv.Itoa(s.TotalProducts)),
		kpi("Customers", strconv.Itoa(s.TotalCustomers)),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin registros", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func recentOrderRows(orders []dto.OrderResponse) []core.Row {
	if len(orders) == 0 {
		return []core.Row{emptyRow()}
	}
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1, Left: 1}))
	}
	rows := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, row.New(6).Add(
			cell(o.OrderNumber, 2),
			cell(strconv.FormatInt(o.CustomerID, 10), 2),
			cell(formatUSD(o.TotalAmount), 2),
			cell(o.Status, 2),
			cell(o.OrderDate.Format(dateLayout), 4),
		))
	}
	return rows
}

func lowStockRows(products []dto.ProductResponse) []core.Row {
	if len(products) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(p.StockQuantity), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Color: colorAlert,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatUSD formatea con separador de miles y dos decimales. Ej: 1234.5 → "$1,234.50".
func formatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// groupThousands inserta comas de miles en un entero sin signo. Ej: "1000000" → "1,000,000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
