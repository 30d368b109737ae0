package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/muycriollo/catalogo-api/internal/application/catalog"
	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
)

// LabelHandler descarga del PDF de etiquetas de stock de un producto.
type LabelHandler struct {
	uc *catalog.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *catalog.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar etiquetas de stock en PDF
// @Tags         labels
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id}/labels [get]
func (h *LabelHandler) Download(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdf, filename, err := h.uc.Generate(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
