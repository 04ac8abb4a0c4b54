package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wattscycling/warehouse-api/internal/domain/entity"
)

// ProductRequest body para crear/actualizar productos.
type ProductRequest struct {
	BaseCode  string `json:"base_code"`
	Name      string `json:"name"`
	TechSpecs string `json:"tech_specs,omitempty"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID        string    `json:"id"`
	BaseCode  string    `json:"base_code"`
	Name      string    `json:"name"`
	TechSpecs string    `json:"tech_specs,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductFromEntity mapea la entidad a la respuesta HTTP.
func ProductFromEntity(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		BaseCode:  p.BaseCode,
		Name:      p.Name,
		TechSpecs: p.TechSpecs,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

// VariantRequest body para crear/actualizar variantes.
// El SKU no se envía: se genera a partir de producto, talla y color.
type VariantRequest struct {
	ProductID     string           `json:"product_id"`
	SizeID        string           `json:"size_id"`
	ColorID       string           `json:"color_id"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
}

// VariantResponse variante del catálogo.
type VariantResponse struct {
	ID            string           `json:"id"`
	SKU           string           `json:"sku"`
	ProductID     string           `json:"product_id"`
	SizeID        string           `json:"size_id"`
	ColorID       string           `json:"color_id"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	Active        bool             `json:"active"`
}

// VariantFromEntity mapea la entidad a la respuesta HTTP.
func VariantFromEntity(v *entity.Variant) VariantResponse {
	return VariantResponse{
		ID:            v.ID,
		SKU:           v.SKU,
		ProductID:     v.ProductID,
		SizeID:        v.SizeID,
		ColorID:       v.ColorID,
		PurchasePrice: v.PurchasePrice,
		SalePrice:     v.SalePrice,
		ImageURL:      v.ImageURL,
		Active:        v.Active,
	}
}

// WarehouseRequest body para crear/actualizar almacenes.
type WarehouseRequest struct {
	Code         string `json:"code"`
	Description  string `json:"description"`
	MapsLocation string `json:"maps_location,omitempty"`
}

// WarehouseResponse almacén.
type WarehouseResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	MapsLocation string `json:"maps_location,omitempty"`
	Active       bool   `json:"active"`
}

// WarehouseFromEntity mapea la entidad a la respuesta HTTP.
func WarehouseFromEntity(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:           w.ID,
		Code:         w.Code,
		Description:  w.Description,
		MapsLocation: w.MapsLocation,
		Active:       w.Active,
	}
}

// SizeRequest body para crear tallas.
type SizeRequest struct {
	Name string `json:"name"`
}

// SizeResponse talla del catálogo.
type SizeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SizeFromEntity mapea la entidad a la respuesta HTTP.
func SizeFromEntity(s *entity.Size) SizeResponse {
	return SizeResponse{ID: s.ID, Name: s.Name}
}

// ColorRequest body para crear colores.
type ColorRequest struct {
	Name    string `json:"name"`
	HexCode string `json:"hex_code,omitempty"`
}

// ColorResponse color del catálogo.
type ColorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hex_code,omitempty"`
}

// ColorFromEntity mapea la entidad a la respuesta HTTP.
func ColorFromEntity(c *entity.Color) ColorResponse {
	return ColorResponse{ID: c.ID, Name: c.Name, HexCode: c.HexCode}
}
