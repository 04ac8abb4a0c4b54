package repository

import "time"

// Modos de coincidencia para filtros de texto (alineados con los MatchMode de PrimeNG).
const (
	MatchContains    = "contains"
	MatchStartsWith  = "startsWith"
	MatchEndsWith    = "endsWith"
	MatchEquals      = "equals"
	MatchNotEquals   = "notEquals"
	MatchNotContains = "notContains"
)

// TextFilter es un filtro de texto con su modo de coincidencia.
// Value vacío = sin filtro. Mode vacío = contains.
type TextFilter struct {
	Value string
	Mode  string
}

// Empty indica si el filtro no aplica.
func (f TextFilter) Empty() bool {
	return f.Value == ""
}

// MovementFilter filtros del histórico de movimientos.
type MovementFilter struct {
	ProductName   TextFilter // nombre del producto de la variante
	WarehouseDesc TextFilter // descripción del almacén
	Notes         TextFilter
	CreatedBy     TextFilter
	Type          string // tipo exacto, vacío = todos
	DateFrom      *time.Time
	DateTo        *time.Time
}

// StockFilter filtros del listado de stock por almacén.
type StockFilter struct {
	ProductName TextFilter
	SKU         TextFilter
	Size        TextFilter
	Color       TextFilter
}
