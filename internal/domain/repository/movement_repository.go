package repository

import "github.com/wattscycling/warehouse-api/internal/domain/entity"

// MovementDetail es un movimiento con las etiquetas del catálogo resueltas,
// para el histórico y los informes.
type MovementDetail struct {
	entity.Movement
	SKU           string
	ProductName   string
	Size          string
	Color         string
	WarehouseDesc string
}

// MovementRepository acceso al libro de movimientos (append-only).
type MovementRepository interface {
	// Create persiste un movimiento. Nunca hay Update ni Delete: el libro es inmutable.
	Create(m *entity.Movement) error

	// GetByID devuelve un movimiento con etiquetas, o nil si no existe.
	GetByID(id string) (*MovementDetail, error)

	// List devuelve una página del histórico aplicando los filtros,
	// ordenada por fecha de creación descendente.
	List(f MovementFilter, limit, offset int) ([]*MovementDetail, error)

	// Count devuelve el total de movimientos que cumplen los filtros.
	Count(f MovementFilter) (int, error)

	// ListByVariant devuelve el histórico de una variante en todos los almacenes.
	ListByVariant(variantID string, limit, offset int) ([]*MovementDetail, error)

	// ListAll devuelve el histórico completo filtrado, sin paginar (exportación).
	ListAll(f MovementFilter) ([]*MovementDetail, error)
}
