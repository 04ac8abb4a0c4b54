package entity

import "time"

// Product representa un producto del catálogo (maillot, culotte, etc.).
// El stock no vive aquí: se gestiona por variante y almacén en StockLine.
type Product struct {
	ID        string
	BaseCode  string // código base único, prefijo del SKU de sus variantes
	Name      string
	TechSpecs string // características técnicas (texto largo)
	Active    bool   // soft delete
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Size representa una talla (S, M, L, 42...).
type Size struct {
	ID   string
	Name string
}

// Color representa un color del catálogo.
type Color struct {
	ID      string
	Name    string
	HexCode string
}
