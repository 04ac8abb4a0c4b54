package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// RenderCSV vuelca el histórico de movimientos a CSV, con las mismas columnas
// que el PDF. encoding/csv se encarga del quoting.
func (r *MovementReport) RenderCSV(movements []*repository.MovementDetail, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Fecha", "Tipo", "SKU", "Producto", "Talla", "Color",
		"Cantidad", "Stock resultante", "Almacén", "Creado por",
		"P. compra unitario", "P. venta unitario", "Total compra", "Total venta", "Observaciones"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}

	for _, m := range movements {
		record := []string{
			m.CreatedAt.Format(dateFormat),
			string(m.Type),
			m.SKU,
			m.ProductName,
			m.Size,
			m.Color,
			fmt.Sprintf("%d", m.Quantity),
			fmt.Sprintf("%d", m.ResultingQuantity),
			m.WarehouseDesc,
			m.CreatedBy,
			decimalOrEmpty(m.UnitPurchasePrice),
			decimalOrEmpty(m.UnitSalePrice),
			m.TotalPurchase.StringFixed(2),
			m.TotalSale.StringFixed(2),
			m.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func decimalOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
