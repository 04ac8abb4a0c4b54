package repository

import "github.com/wattscycling/warehouse-api/internal/domain/entity"

// ProductRepository acceso a productos del catálogo.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	GetByBaseCode(baseCode string) (*entity.Product, error)
	Create(p *entity.Product) error
	Update(p *entity.Product) error
	List(name TextFilter, activeOnly bool, limit, offset int) ([]*entity.Product, error)
	SetActive(id string, active bool) error
}

// VariantRepository acceso a variantes (talla/color) de productos.
type VariantRepository interface {
	GetByID(id string) (*entity.Variant, error)
	GetBySKU(sku string) (*entity.Variant, error)
	Create(v *entity.Variant) error
	Update(v *entity.Variant) error
	ListByProduct(productID string, activeOnly bool, limit, offset int) ([]*entity.Variant, error)
	SetActive(id string, active bool) error
}

// SizeRepository acceso a tallas.
type SizeRepository interface {
	GetByID(id string) (*entity.Size, error)
	Create(s *entity.Size) error
	List() ([]*entity.Size, error)
}

// ColorRepository acceso a colores.
type ColorRepository interface {
	GetByID(id string) (*entity.Color, error)
	Create(c *entity.Color) error
	List() ([]*entity.Color, error)
}

// WarehouseRepository acceso a almacenes.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	GetByCode(code string) (*entity.Warehouse, error)
	Create(w *entity.Warehouse) error
	Update(w *entity.Warehouse) error
	List(code TextFilter, description TextFilter, activeOnly bool, limit, offset int) ([]*entity.Warehouse, error)
	SetActive(id string, active bool) error
}

// UserRepository acceso a usuarios (auth).
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Create(u *entity.User) error
}
