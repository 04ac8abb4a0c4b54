// Package report genera el informe "Histórico de Movimientos" en PDF (Maroto v2)
// y CSV, con las columnas del histórico: fecha, tipo, SKU, producto, cantidad,
// stock resultante, almacén y actor.
package report

import (
	"fmt"

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

	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

const dateFormat = "2006-01-02 15:04"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MovementReport implements ledger.ReportRenderer.
var _ ledger.ReportRenderer = (*MovementReport)(nil)

// MovementReport renderiza el histórico de movimientos para exportación.
type MovementReport struct{}

// NewMovementReport construye el renderizador.
func NewMovementReport() *MovementReport {
	return &MovementReport{}
}

// RenderPDF genera el PDF del histórico y devuelve sus bytes.
func (r *MovementReport) RenderPDF(movements []*repository.MovementDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Histórico de Movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow())
	for _, mov := range movements {
		m.AddRows(detailRow(mov))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Histórico de Movimientos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Align: align.Center,
			}),
		),
	)
}

// Anchos de columna (suman 12): Fecha, Tipo, SKU, Producto, Cant., Stock, Almacén, Creado por.
var colWidths = []int{2, 2, 2, 2, 1, 1, 1, 1}

func headerRow() core.Row {
	titles := []string{"Fecha", "Tipo", "SKU", "Producto", "Cant.", "Stock", "Almacén", "Creado por"}
	cols := make([]core.Col, 0, len(titles))
	for i, t := range titles {
		cols = append(cols, col.New(colWidths[i]).Add(
			text.New(t, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		))
	}
	return row.New(7).Add(cols...)
}

func detailRow(m *repository.MovementDetail) core.Row {
	values := []string{
		m.CreatedAt.Format(dateFormat),
		string(m.Type),
		m.SKU,
		m.ProductName,
		fmt.Sprintf("%d", m.Quantity),
		fmt.Sprintf("%d", m.ResultingQuantity),
		m.WarehouseDesc,
		m.CreatedBy,
	}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(colWidths[i]).Add(
			text.New(v, props.Text{Size: 7, Color: colorGray}),
		))
	}
	return row.New(6).Add(cols...)
}
