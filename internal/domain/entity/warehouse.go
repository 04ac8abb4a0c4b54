package entity

import "time"

// Warehouse representa un almacén físico con stock independiente por variante.
type Warehouse struct {
	ID           string
	Code         string // código único, normalizado a mayúsculas
	Description  string
	MapsLocation string // enlace a Google Maps (opcional)
	Active       bool   // soft delete; las líneas de stock sobreviven
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
