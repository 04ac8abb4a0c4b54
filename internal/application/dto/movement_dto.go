package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// ApplyMovementRequest body para POST /api/movements.
// Los precios manuales son opcionales: si son null se usan los de la variante.
type ApplyMovementRequest struct {
	VariantSKU        string           `json:"variant_sku"`
	WarehouseID       string           `json:"warehouse_id"`
	Type              string           `json:"type"`
	Quantity          int              `json:"quantity"`
	Notes             string           `json:"notes,omitempty"`
	UnitPurchasePrice *decimal.Decimal `json:"unit_purchase_price,omitempty"`
	UnitSalePrice     *decimal.Decimal `json:"unit_sale_price,omitempty"`
}

// StockLineResponse vista del stock resultante tras un movimiento.
type StockLineResponse struct {
	VariantID     string `json:"variant_id"`
	SKU           string `json:"sku"`
	WarehouseID   string `json:"warehouse_id"`
	WarehouseDesc string `json:"warehouse_desc"`
	Quantity      int    `json:"quantity"`
}

// ApplyMovementResponse respuesta de un movimiento aceptado: el registro de
// auditoría y la línea de stock resultante.
type ApplyMovementResponse struct {
	ID                string            `json:"id"`
	CreatedAt         time.Time         `json:"created_at"`
	CreatedBy         string            `json:"created_by"`
	Type              string            `json:"type"`
	Quantity          int               `json:"quantity"`
	ResultingQuantity int               `json:"resulting_quantity"`
	Notes             string            `json:"notes,omitempty"`
	UnitPurchasePrice *decimal.Decimal  `json:"unit_purchase_price,omitempty"`
	UnitSalePrice     *decimal.Decimal  `json:"unit_sale_price,omitempty"`
	TotalPurchase     decimal.Decimal   `json:"total_purchase"`
	TotalSale         decimal.Decimal   `json:"total_sale"`
	Stock             StockLineResponse `json:"stock"`
}

// MovementResponse un movimiento del histórico con sus etiquetas.
type MovementResponse struct {
	ID                string           `json:"id"`
	CreatedAt         time.Time        `json:"created_at"`
	CreatedBy         string           `json:"created_by"`
	Type              string           `json:"type"`
	Quantity          int              `json:"quantity"`
	ResultingQuantity int              `json:"resulting_quantity"`
	Notes             string           `json:"notes,omitempty"`
	SKU               string           `json:"sku"`
	ProductName       string           `json:"product_name"`
	Size              string           `json:"size"`
	Color             string           `json:"color"`
	WarehouseID       string           `json:"warehouse_id"`
	WarehouseDesc     string           `json:"warehouse_desc"`
	UnitPurchasePrice *decimal.Decimal `json:"unit_purchase_price,omitempty"`
	UnitSalePrice     *decimal.Decimal `json:"unit_sale_price,omitempty"`
	TotalPurchase     decimal.Decimal  `json:"total_purchase"`
	TotalSale         decimal.Decimal  `json:"total_sale"`
}

// MovementFromDetail mapea el read-model del repositorio a la respuesta HTTP.
func MovementFromDetail(d *repository.MovementDetail) MovementResponse {
	return MovementResponse{
		ID:                d.ID,
		CreatedAt:         d.CreatedAt,
		CreatedBy:         d.CreatedBy,
		Type:              string(d.Type),
		Quantity:          d.Quantity,
		ResultingQuantity: d.ResultingQuantity,
		Notes:             d.Notes,
		SKU:               d.SKU,
		ProductName:       d.ProductName,
		Size:              d.Size,
		Color:             d.Color,
		WarehouseID:       d.WarehouseID,
		WarehouseDesc:     d.WarehouseDesc,
		UnitPurchasePrice: d.UnitPurchasePrice,
		UnitSalePrice:     d.UnitSalePrice,
		TotalPurchase:     d.TotalPurchase,
		TotalSale:         d.TotalSale,
	}
}

// StockItemResponse una línea del listado de stock por almacén.
type StockItemResponse struct {
	VariantID   string `json:"variant_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Quantity    int    `json:"quantity"`
}
