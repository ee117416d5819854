// Package pdf genera el reporte imprimible del estado de inventario usando
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app + fecha de generación              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Productos | Stock total | Críticos                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Categoría | Stock | Mínimo | Alerta   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

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

	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorOrange  = &props.Color{Red: 200, Green: 120, Blue: 0}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 40}
)

// StatusReportGenerator genera el PDF del estado de inventario.
type StatusReportGenerator struct{}

// NewStatusReportGenerator construye el generador.
func NewStatusReportGenerator() *StatusReportGenerator { return &StatusReportGenerator{} }

// GenerateStatusReport genera el reporte y devuelve sus bytes.
func (g *StatusReportGenerator) GenerateStatusReport(appName string, rows []entity.InventoryStatus) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(appName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(rows))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y fecha de generación (der).
func headerRow(appName string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de estado de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// kpiRow: totales rápidos calculados sobre las filas del reporte.
func kpiRow(rows []entity.InventoryStatus) core.Row {
	totalStock, criticos := 0, 0
	for _, r := range rows {
		totalStock += r.CurrentStock
		if r.AlertState == entity.AlertCritico {
			criticos++
		}
	}
	kpi := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 6}),
		)
	}
	return row.New(14).Add(
		kpi("Productos", strconv.Itoa(len(rows)), colorPrimary),
		kpi("Stock total", strconv.Itoa(totalStock), colorPrimary),
		kpi("Alertas críticas", strconv.Itoa(criticos), colorRed),
	)
}

// tableHeaderRow: cabecera de la tabla de existencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Mínimo", 1, align.Right),
		h("Alerta", 2, align.Center),
	)
}

// tableRows: una fila por producto, con la alerta coloreada según su estado.
func tableRows(rows []entity.InventoryStatus) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.SKU, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.Category, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.Itoa(r.CurrentStock), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(r.MinStock), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(r.AlertState, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
				Color: alertColor(r.AlertState),
			})),
		))
	}
	return result
}

func alertColor(state string) *props.Color {
	switch state {
	case entity.AlertCritico:
		return colorRed
	case entity.AlertBajo:
		return colorOrange
	default:
		return colorGreen
	}
}
