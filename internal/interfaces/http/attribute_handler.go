package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/application/usecase"
)

// AttributeHandler tallas y colores del catálogo (protegido).
type AttributeHandler struct {
	uc *usecase.AttributeUseCase
}

// NewAttributeHandler construye el handler.
func NewAttributeHandler(uc *usecase.AttributeUseCase) *AttributeHandler {
	return &AttributeHandler{uc: uc}
}

// CreateSize godoc
// @Summary      Crear talla
// @Tags         attributes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SizeRequest  true  "name"
// @Success      201   {object}  dto.SizeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sizes [post]
func (h *AttributeHandler) CreateSize(c *fiber.Ctx) error {
	var in dto.SizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CreateSize(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SizeFromEntity(s))
}

// ListSizes godoc
// @Summary      Listar tallas
// @Tags         attributes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SizeResponse
// @Router       /api/sizes [get]
func (h *AttributeHandler) ListSizes(c *fiber.Ctx) error {
	list, err := h.uc.ListSizes()
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.SizeResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SizeFromEntity(s))
	}
	return c.JSON(items)
}

// CreateColor godoc
// @Summary      Crear color
// @Tags         attributes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ColorRequest  true  "name, hex_code"
// @Success      201   {object}  dto.ColorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/colors [post]
func (h *AttributeHandler) CreateColor(c *fiber.Ctx) error {
	var in dto.ColorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	col, err := h.uc.CreateColor(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ColorFromEntity(col))
}

// ListColors godoc
// @Summary      Listar colores
// @Tags         attributes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ColorResponse
// @Router       /api/colors [get]
func (h *AttributeHandler) ListColors(c *fiber.Ctx) error {
	list, err := h.uc.ListColors()
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.ColorResponse, 0, len(list))
	for _, col := range list {
		items = append(items, dto.ColorFromEntity(col))
	}
	return c.JSON(items)
}
