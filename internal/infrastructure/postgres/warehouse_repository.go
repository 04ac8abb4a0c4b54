package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const selectWarehouse = `
	SELECT id, code, description, maps_location, active, created_at, updated_at
	FROM warehouses`

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(&w.ID, &w.Code, &w.Description, &w.MapsLocation, &w.Active, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByID obtiene un almacén por ID, o nil si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(context.Background(), selectWarehouse+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// GetByCode obtiene un almacén por código, o nil si no existe.
func (r *WarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(context.Background(), selectWarehouse+" WHERE code = $1", code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by code: %w", err)
	}
	return w, nil
}

// Create persiste un almacén nuevo.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, code, description, maps_location, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Code, w.Description, w.MapsLocation, w.Active, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create warehouse: %w", err)
	}
	return nil
}

// Update actualiza los datos del almacén.
func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET code = $2, description = $3, maps_location = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Code, w.Description, w.MapsLocation, w.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// List lista almacenes con filtros y paginación.
func (r *WarehouseRepo) List(code, description repository.TextFilter, activeOnly bool, limit, offset int) ([]*entity.Warehouse, error) {
	b := &condBuilder{}
	b.addText("code", code)
	b.addText("description", description)
	if activeOnly {
		b.add("active = ", true)
	}
	query := selectWarehouse + b.where() +
		fmt.Sprintf(" ORDER BY code LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	args := append(b.args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// SetActive activa o desactiva (soft delete) un almacén. Las líneas de stock quedan.
func (r *WarehouseRepo) SetActive(id string, active bool) error {
	query := `UPDATE warehouses SET active = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("set warehouse active: %w", err)
	}
	return nil
}
