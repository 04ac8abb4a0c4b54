package entity

import "time"

// StockLine representa el stock actual de una variante en un almacén.
// Única por (VariantID, WarehouseID); se crea perezosamente con el primer
// movimiento que toca el par y nunca se borra (una línea a cero sigue siendo
// un registro válido). Solo el motor de movimientos la muta.
type StockLine struct {
	VariantID   string
	WarehouseID string
	Quantity    int // invariante: >= 0
	UpdatedAt   time.Time
}
