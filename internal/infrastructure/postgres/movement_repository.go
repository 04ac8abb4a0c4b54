package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla movements es append-only: aquí no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, variant_id, warehouse_id, type, quantity, resulting_quantity,
		                       notes, unit_purchase_price, unit_sale_price, total_purchase, total_sale,
		                       created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.VariantID, m.WarehouseID, string(m.Type), m.Quantity, m.ResultingQuantity,
		m.Notes, m.UnitPurchasePrice, m.UnitSalePrice, m.TotalPurchase, m.TotalSale,
		m.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// selectDetail columnas y joins comunes del histórico con etiquetas de catálogo.
const selectDetail = `
	SELECT m.id, m.variant_id, m.warehouse_id, m.type, m.quantity, m.resulting_quantity,
	       m.notes, m.unit_purchase_price, m.unit_sale_price, m.total_purchase, m.total_sale,
	       m.created_at, m.created_by,
	       v.sku, p.name, s.name, c.name, w.description
	FROM movements m
	JOIN variants v ON v.id = m.variant_id
	JOIN products p ON p.id = v.product_id
	JOIN sizes s ON s.id = v.size_id
	JOIN colors c ON c.id = v.color_id
	JOIN warehouses w ON w.id = m.warehouse_id`

func scanDetail(row pgx.Row) (*repository.MovementDetail, error) {
	var d repository.MovementDetail
	var movType string
	var createdBy *string
	var unitPurchase, unitSale *decimal.Decimal
	err := row.Scan(
		&d.ID, &d.VariantID, &d.WarehouseID, &movType, &d.Quantity, &d.ResultingQuantity,
		&d.Notes, &unitPurchase, &unitSale, &d.TotalPurchase, &d.TotalSale,
		&d.CreatedAt, &createdBy,
		&d.SKU, &d.ProductName, &d.Size, &d.Color, &d.WarehouseDesc,
	)
	if err != nil {
		return nil, err
	}
	d.Type = entity.MovementType(movType)
	d.UnitPurchasePrice = unitPurchase
	d.UnitSalePrice = unitSale
	if createdBy != nil {
		d.CreatedBy = *createdBy
	}
	return &d, nil
}

// GetByID obtiene un movimiento con etiquetas por ID, o nil si no existe.
func (r *MovementRepo) GetByID(id string) (*repository.MovementDetail, error) {
	row := r.q.QueryRow(context.Background(), selectDetail+" WHERE m.id = $1", id)
	d, err := scanDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return d, nil
}

// movementConds construye las condiciones SQL de un MovementFilter.
func movementConds(f repository.MovementFilter) *condBuilder {
	b := &condBuilder{}
	b.addText("p.name", f.ProductName)
	b.addText("w.description", f.WarehouseDesc)
	b.addText("m.notes", f.Notes)
	b.addText("m.created_by", f.CreatedBy)
	if f.Type != "" {
		b.add("m.type = ", f.Type)
	}
	b.addDateRange("m.created_at", f.DateFrom, f.DateTo)
	return b
}

// List devuelve una página del histórico filtrado, más reciente primero.
func (r *MovementRepo) List(f repository.MovementFilter, limit, offset int) ([]*repository.MovementDetail, error) {
	b := movementConds(f)
	query := selectDetail + b.where() +
		fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	args := append(b.args, limit, offset)
	return r.list(query, args)
}

// Count devuelve el total de movimientos que cumplen los filtros.
func (r *MovementRepo) Count(f repository.MovementFilter) (int, error) {
	b := movementConds(f)
	query := `
		SELECT count(*)
		FROM movements m
		JOIN variants v ON v.id = m.variant_id
		JOIN products p ON p.id = v.product_id
		JOIN warehouses w ON w.id = m.warehouse_id` + b.where()
	var total int
	if err := r.q.QueryRow(context.Background(), query, b.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

// ListByVariant devuelve el histórico de una variante en todos los almacenes.
func (r *MovementRepo) ListByVariant(variantID string, limit, offset int) ([]*repository.MovementDetail, error) {
	query := selectDetail + " WHERE m.variant_id = $1 ORDER BY m.created_at DESC LIMIT $2 OFFSET $3"
	return r.list(query, []any{variantID, limit, offset})
}

// ListAll devuelve el histórico completo filtrado, sin paginar (exportación).
func (r *MovementRepo) ListAll(f repository.MovementFilter) ([]*repository.MovementDetail, error) {
	b := movementConds(f)
	query := selectDetail + b.where() + " ORDER BY m.created_at DESC"
	return r.list(query, b.args)
}

func (r *MovementRepo) list(query string, args []any) ([]*repository.MovementDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*repository.MovementDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
