package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/muycriollo/catalogo-api/internal/application/catalog"
	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
)

// AvailabilityHandler expone la disponibilidad de opciones para la vitrina (público).
type AvailabilityHandler struct {
	uc *catalog.AvailabilityUseCase
}

// NewAvailabilityHandler construye el handler.
func NewAvailabilityHandler(uc *catalog.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Get godoc
// @Summary      Disponibilidad por opción para la selección actual
// @Description  La selección va en query params, un par eje=valor por eje
// @Description  (ej. ?Color=Rojo&Talle=M). Si la selección está completa la
// @Description  respuesta incluye la combinación exacta con su stock.
// @Tags         availability
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/availability [get]
func (h *AvailabilityHandler) Get(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Resolve(productID, c.Queries())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
