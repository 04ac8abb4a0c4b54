package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL.
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const selectVariant = `
	SELECT id, sku, product_id, size_id, color_id, purchase_price, sale_price,
	       image_url, active, created_at, updated_at
	FROM variants`

func scanVariant(row pgx.Row) (*entity.Variant, error) {
	var v entity.Variant
	var purchase, sale *decimal.Decimal
	err := row.Scan(&v.ID, &v.SKU, &v.ProductID, &v.SizeID, &v.ColorID,
		&purchase, &sale, &v.ImageURL, &v.Active, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.PurchasePrice = purchase
	v.SalePrice = sale
	return &v, nil
}

// GetByID obtiene una variante por ID, o nil si no existe.
func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	v, err := scanVariant(r.q.QueryRow(context.Background(), selectVariant+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return v, nil
}

// GetBySKU obtiene una variante por SKU, o nil si no existe.
func (r *VariantRepo) GetBySKU(sku string) (*entity.Variant, error) {
	v, err := scanVariant(r.q.QueryRow(context.Background(), selectVariant+" WHERE sku = $1", sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant by sku: %w", err)
	}
	return v, nil
}

// Create persiste una variante nueva.
func (r *VariantRepo) Create(v *entity.Variant) error {
	query := `
		INSERT INTO variants (id, sku, product_id, size_id, color_id, purchase_price,
		                      sale_price, image_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.SKU, v.ProductID, v.SizeID, v.ColorID, v.PurchasePrice,
		v.SalePrice, v.ImageURL, v.Active, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create variant: %w", err)
	}
	return nil
}

// Update actualiza precios e imagen de la variante.
func (r *VariantRepo) Update(v *entity.Variant) error {
	query := `
		UPDATE variants SET purchase_price = $2, sale_price = $3, image_url = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.PurchasePrice, v.SalePrice, v.ImageURL, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update variant: %w", err)
	}
	return nil
}

// ListByProduct lista las variantes de un producto.
func (r *VariantRepo) ListByProduct(productID string, activeOnly bool, limit, offset int) ([]*entity.Variant, error) {
	b := &condBuilder{}
	b.add("product_id = ", productID)
	if activeOnly {
		b.add("active = ", true)
	}
	query := selectVariant + b.where() +
		fmt.Sprintf(" ORDER BY sku LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	args := append(b.args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Variant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// SetActive activa o desactiva (soft delete) una variante.
func (r *VariantRepo) SetActive(id string, active bool) error {
	query := `UPDATE variants SET active = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("set variant active: %w", err)
	}
	return nil
}
