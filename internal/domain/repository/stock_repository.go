package repository

import "github.com/wattscycling/warehouse-api/internal/domain/entity"

// StockItem es la vista de una línea de stock con las etiquetas del catálogo,
// para el listado por almacén.
type StockItem struct {
	VariantID     string
	SKU           string
	ProductName   string
	Size          string
	Color         string
	WarehouseID   string
	WarehouseDesc string
	Quantity      int
}

// StockRepository acceso a las líneas de stock por (variante, almacén).
type StockRepository interface {
	// Get devuelve la línea actual; si no existe devuelve una línea a cero (sin crearla).
	Get(variantID, warehouseID string) (*entity.StockLine, error)

	// GetForUpdate devuelve la línea bloqueando la fila (SELECT FOR UPDATE) hasta
	// el fin de la transacción. Si no existe devuelve una línea a cero: el caller
	// la inicializa con Upsert bajo el mismo bloqueo para evitar duplicados.
	GetForUpdate(variantID, warehouseID string) (*entity.StockLine, error)

	// Upsert inserta o actualiza la línea. La constraint única
	// (variant_id, warehouse_id) respalda al bloqueo como última barrera.
	Upsert(line *entity.StockLine) error

	// TotalQuantity suma el stock de una variante en todos los almacenes (sin bloqueo).
	TotalQuantity(variantID string) (int, error)

	// ListByWarehouse lista el stock de un almacén con filtros y paginación.
	ListByWarehouse(warehouseID string, f StockFilter, limit, offset int) ([]*StockItem, error)
}
