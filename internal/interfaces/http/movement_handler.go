package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// Formato de fecha de los filtros date_from/date_to del histórico.
const queryDateFormat = "2006-01-02"

// MovementHandler maneja el registro de movimientos y el histórico (protegido).
type MovementHandler struct {
	engine  *ledger.UseCase
	history *ledger.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(engine *ledger.UseCase, history *ledger.HistoryUseCase) *MovementHandler {
	return &MovementHandler{engine: engine, history: history}
}

// Apply godoc
// @Summary      Registrar movimiento de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "variant_sku, warehouse_id, type, quantity, notes, precios manuales opcionales"
// @Success      201   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.engine.ApplyMovement(c.Context(), ledger.MovementInput{
		VariantSKU:        in.VariantSKU,
		WarehouseID:       in.WarehouseID,
		Quantity:          in.Quantity,
		Type:              in.Type,
		Notes:             in.Notes,
		UnitPurchasePrice: in.UnitPurchasePrice,
		UnitSalePrice:     in.UnitSalePrice,
		CreatedBy:         GetUsername(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	m := result.Movement
	return c.Status(fiber.StatusCreated).JSON(dto.ApplyMovementResponse{
		ID:                m.ID,
		CreatedAt:         m.CreatedAt,
		CreatedBy:         m.CreatedBy,
		Type:              string(m.Type),
		Quantity:          m.Quantity,
		ResultingQuantity: m.ResultingQuantity,
		Notes:             m.Notes,
		UnitPurchasePrice: m.UnitPurchasePrice,
		UnitSalePrice:     m.UnitSalePrice,
		TotalPurchase:     m.TotalPurchase,
		TotalSale:         m.TotalSale,
		Stock: dto.StockLineResponse{
			VariantID:     result.Stock.VariantID,
			SKU:           result.SKU,
			WarehouseID:   result.Stock.WarehouseID,
			WarehouseDesc: result.WarehouseDesc,
			Quantity:      result.Stock.Quantity,
		},
	})
}

// List godoc
// @Summary      Histórico de movimientos con filtros y paginación
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_name   query  string  false  "Filtro por nombre de producto"
// @Param        warehouse      query  string  false  "Filtro por descripción de almacén"
// @Param        notes          query  string  false  "Filtro por notas"
// @Param        created_by     query  string  false  "Filtro por usuario"
// @Param        type           query  string  false  "Tipo exacto de movimiento"
// @Param        date_from      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to        query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Param        limit          query  int     false  "Tamaño de página (máx 100)"
// @Param        offset         query  int     false  "Desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	f, err := movementFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato esperado YYYY-MM-DD"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, total, err := h.history.History(c.Context(), f, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]dto.MovementResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.MovementFromDetail(d))
	}
	return c.JSON(fiber.Map{
		"movements": items,
		"page":      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// ByVariant godoc
// @Summary      Histórico de una variante en todos los almacenes
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la variante"
// @Param        limit   query  int     false  "Tamaño de página (máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/variant/{id} [get]
func (h *MovementHandler) ByVariant(c *fiber.Ctx) error {
	variantID := c.Params("id")
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, err := h.history.VariantHistory(c.Context(), variantID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.MovementFromDetail(d))
	}
	return c.JSON(items)
}

// Export godoc
// @Summary      Exportar el histórico filtrado a CSV o PDF
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        format  query  string  false  "csv o pdf (por defecto pdf)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/export [get]
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	f, err := movementFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato esperado YYYY-MM-DD"})
	}
	format := c.Query("format", "pdf")

	var buf bytes.Buffer
	if err := h.history.Export(c.Context(), f, format, &buf); err != nil {
		return respondError(c, err)
	}

	if format == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
	} else {
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	}
	return c.Send(buf.Bytes())
}

// movementFilterFromQuery arma el filtro del histórico desde la query string.
// Cada filtro de texto acepta un modo opcional en <campo>_mode.
func movementFilterFromQuery(c *fiber.Ctx) (repository.MovementFilter, error) {
	f := repository.MovementFilter{
		ProductName:   textFilterFromQuery(c, "product_name"),
		WarehouseDesc: textFilterFromQuery(c, "warehouse"),
		Notes:         textFilterFromQuery(c, "notes"),
		CreatedBy:     textFilterFromQuery(c, "created_by"),
		Type:          c.Query("type"),
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse(queryDateFormat, raw)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse(queryDateFormat, raw)
		if err != nil {
			return f, err
		}
		// Inclusivo: cubre todo el día indicado.
		end := t.Add(24*time.Hour - time.Second)
		f.DateTo = &end
	}
	return f, nil
}

func textFilterFromQuery(c *fiber.Ctx, key string) repository.TextFilter {
	return repository.TextFilter{
		Value: c.Query(key),
		Mode:  c.Query(key + "_mode"),
	}
}
