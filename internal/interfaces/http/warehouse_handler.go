package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/application/usecase"
)

// WarehouseHandler CRUD de almacenes (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseRequest  true  "code, description, maps_location"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	w, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WarehouseFromEntity(w))
}

// GetByID godoc
// @Summary      Obtener almacén por ID
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del almacén"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	w, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WarehouseFromEntity(w))
}

// Update godoc
// @Summary      Actualizar almacén
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del almacén"
// @Param        body  body  dto.WarehouseRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	w, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WarehouseFromEntity(w))
}

// List godoc
// @Summary      Listar almacenes
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        code         query  string  false  "Filtro por código"
// @Param        description  query  string  false  "Filtro por descripción"
// @Param        all          query  bool    false  "Incluir inactivos"
// @Param        limit        query  int     false  "Tamaño de página (máx 100)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	activeOnly := !c.QueryBool("all")

	list, err := h.uc.List(
		textFilterFromQuery(c, "code"),
		textFilterFromQuery(c, "description"),
		activeOnly, page.Limit, page.Offset,
	)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseFromEntity(w))
	}
	return c.JSON(items)
}

// Deactivate godoc
// @Summary      Desactivar almacén (soft delete)
// @Tags         warehouses
// @Security     Bearer
// @Param        id  path  string  true  "ID del almacén"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Activate godoc
// @Summary      Reactivar almacén
// @Tags         warehouses
// @Security     Bearer
// @Param        id  path  string  true  "ID del almacén"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/activate [post]
func (h *WarehouseHandler) Activate(c *fiber.Ctx) error {
	if err := h.uc.Activate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
