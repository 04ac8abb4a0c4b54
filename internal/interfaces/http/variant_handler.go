package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/application/usecase"
)

// VariantHandler CRUD de variantes talla/color (protegido).
type VariantHandler struct {
	uc *usecase.VariantUseCase
}

// NewVariantHandler construye el handler.
func NewVariantHandler(uc *usecase.VariantUseCase) *VariantHandler {
	return &VariantHandler{uc: uc}
}

// Create godoc
// @Summary      Crear variante (el SKU se genera automáticamente)
// @Tags         variants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VariantRequest  true  "product_id, size_id, color_id, precios opcionales"
// @Success      201   {object}  dto.VariantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/variants [post]
func (h *VariantHandler) Create(c *fiber.Ctx) error {
	var in dto.VariantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	v, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.VariantFromEntity(v))
}

// GetByID godoc
// @Summary      Obtener variante por ID
// @Tags         variants
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la variante"
// @Success      200  {object}  dto.VariantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/variants/{id} [get]
func (h *VariantHandler) GetByID(c *fiber.Ctx) error {
	v, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.VariantFromEntity(v))
}

// Update godoc
// @Summary      Actualizar precios e imagen de la variante
// @Tags         variants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la variante"
// @Param        body  body  dto.VariantRequest  true  "purchase_price, sale_price, image_url"
// @Success      200   {object}  dto.VariantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/variants/{id} [put]
func (h *VariantHandler) Update(c *fiber.Ctx) error {
	var in dto.VariantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	v, err := h.uc.UpdatePrices(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.VariantFromEntity(v))
}

// ListByProduct godoc
// @Summary      Listar variantes de un producto
// @Tags         variants
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        all     query  bool    false  "Incluir inactivas"
// @Param        limit   query  int     false  "Tamaño de página (máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.VariantResponse
// @Router       /api/products/{id}/variants [get]
func (h *VariantHandler) ListByProduct(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	activeOnly := !c.QueryBool("all")

	list, err := h.uc.ListByProduct(c.Params("id"), activeOnly, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		items = append(items, dto.VariantFromEntity(v))
	}
	return c.JSON(items)
}

// Deactivate godoc
// @Summary      Desactivar variante (soft delete)
// @Tags         variants
// @Security     Bearer
// @Param        id  path  string  true  "ID de la variante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/variants/{id} [delete]
func (h *VariantHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
