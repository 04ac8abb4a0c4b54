package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la línea de stock actual; si no existe devuelve una línea a cero.
func (r *StockRepo) Get(variantID, warehouseID string) (*entity.StockLine, error) {
	query := `
		SELECT variant_id, warehouse_id, quantity, updated_at
		FROM stock_lines WHERE variant_id = $1 AND warehouse_id = $2`
	var line entity.StockLine
	err := r.q.QueryRow(context.Background(), query, variantID, warehouseID).Scan(
		&line.VariantID, &line.WarehouseID, &line.Quantity, &line.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLine{VariantID: variantID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock line: %w", err)
	}
	return &line, nil
}

// GetForUpdate obtiene la línea bloqueando la fila (SELECT FOR UPDATE) hasta el
// fin de la transacción. Si no existe devuelve una línea a cero: el Upsert del
// caller la crea bajo el mismo alcance transaccional.
func (r *StockRepo) GetForUpdate(variantID, warehouseID string) (*entity.StockLine, error) {
	query := `
		SELECT variant_id, warehouse_id, quantity, updated_at
		FROM stock_lines WHERE variant_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var line entity.StockLine
	err := r.q.QueryRow(context.Background(), query, variantID, warehouseID).Scan(
		&line.VariantID, &line.WarehouseID, &line.Quantity, &line.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLine{VariantID: variantID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock line for update: %w", err)
	}
	return &line, nil
}

// Upsert inserta o actualiza la cantidad (por variante y almacén). La constraint
// única sobre (variant_id, warehouse_id) respalda al bloqueo como última barrera.
func (r *StockRepo) Upsert(line *entity.StockLine) error {
	query := `
		INSERT INTO stock_lines (variant_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (variant_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, line.VariantID, line.WarehouseID, line.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock line: %w", err)
	}
	return nil
}

// TotalQuantity suma el stock de una variante en todos los almacenes (sin bloqueo).
func (r *StockRepo) TotalQuantity(variantID string) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock_lines WHERE variant_id = $1`
	var total int
	if err := r.q.QueryRow(context.Background(), query, variantID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total quantity: %w", err)
	}
	return total, nil
}

// ListByWarehouse lista el stock de un almacén con las etiquetas del catálogo.
func (r *StockRepo) ListByWarehouse(warehouseID string, f repository.StockFilter, limit, offset int) ([]*repository.StockItem, error) {
	b := &condBuilder{}
	b.add("sl.warehouse_id = ", warehouseID)
	b.addText("p.name", f.ProductName)
	b.addText("v.sku", f.SKU)
	b.addText("s.name", f.Size)
	b.addText("c.name", f.Color)

	query := `
		SELECT sl.variant_id, v.sku, p.name, s.name, c.name,
		       sl.warehouse_id, w.description, sl.quantity
		FROM stock_lines sl
		JOIN variants v ON v.id = sl.variant_id
		JOIN products p ON p.id = v.product_id
		JOIN sizes s ON s.id = v.size_id
		JOIN colors c ON c.id = v.color_id
		JOIN warehouses w ON w.id = sl.warehouse_id` +
		b.where() +
		fmt.Sprintf(" ORDER BY v.sku LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	args := append(b.args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock by warehouse: %w", err)
	}
	defer rows.Close()

	var list []*repository.StockItem
	for rows.Next() {
		var item repository.StockItem
		if err := rows.Scan(&item.VariantID, &item.SKU, &item.ProductName, &item.Size,
			&item.Color, &item.WarehouseID, &item.WarehouseDesc, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
