package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// StockHandler consultas de solo lectura sobre el stock (protegido).
type StockHandler struct {
	uc *ledger.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ByWarehouse godoc
// @Summary      Stock de un almacén con filtros y paginación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "ID del almacén"
// @Param        product_name  query  string  false  "Filtro por nombre de producto"
// @Param        sku           query  string  false  "Filtro por SKU"
// @Param        size          query  string  false  "Filtro por talla"
// @Param        color         query  string  false  "Filtro por color"
// @Param        limit         query  int     false  "Tamaño de página (máx 100)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/warehouses/{id} [get]
func (h *StockHandler) ByWarehouse(c *fiber.Ctx) error {
	warehouseID := c.Params("id")
	f := repository.StockFilter{
		ProductName: textFilterFromQuery(c, "product_name"),
		SKU:         textFilterFromQuery(c, "sku"),
		Size:        textFilterFromQuery(c, "size"),
		Color:       textFilterFromQuery(c, "color"),
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, err := h.uc.WarehouseStock(c.Context(), warehouseID, f, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.StockItemResponse{
			VariantID:   it.VariantID,
			SKU:         it.SKU,
			ProductName: it.ProductName,
			Size:        it.Size,
			Color:       it.Color,
			Quantity:    it.Quantity,
		})
	}
	return c.JSON(items)
}

// VariantTotal godoc
// @Summary      Stock total de una variante sumando todos los almacenes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la variante"
// @Success      200  {object}  map[string]int
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/variants/{id}/total [get]
func (h *StockHandler) VariantTotal(c *fiber.Ctx) error {
	variantID := c.Params("id")
	total, err := h.uc.TotalStock(c.Context(), variantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"variant_id": variantID, "total_quantity": total})
}
