package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/muycriollo/catalogo-api/internal/application/catalog"
	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
)

// MatrixHandler maneja la matriz de combinaciones y la edición de stock.
type MatrixHandler struct {
	uc *catalog.MatrixUseCase
}

// NewMatrixHandler construye el handler.
func NewMatrixHandler(uc *catalog.MatrixUseCase) *MatrixHandler {
	return &MatrixHandler{uc: uc}
}

// Generate godoc
// @Summary      Regenerar la matriz de combinaciones de un producto
// @Description  Reconcilia la matriz contra el catálogo de variantes preservando
// @Description  ID y stock de las combinaciones que siguen vigentes. Si el
// @Description  catálogo quedó vacío y hay combinaciones, responde
// @Description  requires_confirmation=true sin tocar nada; repetir con
// @Description  ?confirm=true para colapsar la matriz.
// @Tags         matrix
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del producto"
// @Param        confirm  query  bool    false  "Confirmar colapso destructivo"
// @Success      200  {object}  dto.MatrixResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id}/matrix [post]
func (h *MatrixHandler) Generate(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	confirmed := c.QueryBool("confirm", false)
	out, err := h.uc.GenerateMatrix(c.Context(), productID, confirmed)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetStock godoc
// @Summary      Fijar el stock de una combinación
// @Description  Actualiza el stock y recalcula el stock total del producto en la
// @Description  misma transacción.
// @Tags         matrix
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        combinationId  path  string  true  "ID de la combinación"
// @Param        body  body  dto.SetStockRequest  true  "Nuevo stock"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/combinations/{combinationId}/stock [put]
func (h *MatrixHandler) SetStock(c *fiber.Ctx) error {
	id := c.Params("combinationId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "combinationId es requerido"})
	}
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetCombinationStock(c.Context(), id, in.Stock)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStockOutOfRange):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "combinación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetBaseStock godoc
// @Summary      Fijar el stock base de un producto sin matriz
// @Description  Solo es válido cuando el producto no tiene combinaciones; con
// @Description  matriz activa el stock se edita por combinación.
// @Tags         matrix
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetBaseStockRequest  true  "Nuevo stock base"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id}/base-stock [put]
func (h *MatrixHandler) SetBaseStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SetBaseStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetBaseStock(c.Context(), productID, in.Stock)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStockOutOfRange):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrHasCombinations):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_COMBINATIONS", Message: "el producto tiene matriz: editar stock por combinación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
