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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const selectProduct = `
	SELECT id, base_code, name, tech_specs, active, created_at, updated_at
	FROM products`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.BaseCode, &p.Name, &p.TechSpecs, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), selectProduct+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByBaseCode obtiene un producto por su código base, o nil si no existe.
func (r *ProductRepo) GetByBaseCode(baseCode string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), selectProduct+" WHERE base_code = $1", baseCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by base code: %w", err)
	}
	return p, nil
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, base_code, name, tech_specs, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.BaseCode, p.Name, p.TechSpecs, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Update actualiza nombre y características.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, tech_specs = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.TechSpecs, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con filtro de nombre y paginación.
func (r *ProductRepo) List(name repository.TextFilter, activeOnly bool, limit, offset int) ([]*entity.Product, error) {
	b := &condBuilder{}
	b.addText("name", name)
	if activeOnly {
		b.add("active = ", true)
	}
	query := selectProduct + b.where() +
		fmt.Sprintf(" ORDER BY base_code LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	args := append(b.args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SetActive activa o desactiva (soft delete) un producto.
func (r *ProductRepo) SetActive(id string, active bool) error {
	query := `UPDATE products SET active = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return nil
}
