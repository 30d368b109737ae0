package catalog

import (
	"errors"

	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
	"github.com/muycriollo/catalogo-api/internal/domain/variant"
)

// AvailabilityUseCase resuelve la disponibilidad de opciones para la vitrina:
// qué valores siguen comprables dada la selección parcial del cliente, y el
// stock exacto cuando la selección está completa.
type AvailabilityUseCase struct {
	productRepo     repository.ProductRepository
	variantRepo     repository.VariantRepository
	combinationRepo repository.CombinationRepository
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	combinationRepo repository.CombinationRepository,
) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		productRepo:     productRepo,
		variantRepo:     variantRepo,
		combinationRepo: combinationRepo,
	}
}

// Resolve calcula la disponibilidad por opción y, si la selección está
// completa, la combinación exacta con su stock. Una selección sin coincidencia
// exacta se reporta como no resuelta (Resolved en nil), nunca con un stock
// adivinado. Elegir un valor incompatible no resetea los demás ejes: la
// disponibilidad simplemente se recalcula contra la nueva selección.
func (uc *AvailabilityUseCase) Resolve(productID string, selection map[string]string) (*dto.AvailabilityResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	variants, err := uc.variantRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	cat, err := variant.NewCatalog(variants)
	if err != nil {
		return nil, err
	}
	combos, err := uc.combinationRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	// Selecciones vacías ("Color=") no cuentan como elegidas, y se ignoran
	// claves que no son ejes del catálogo (otros query params).
	axes := map[string]bool{}
	for _, axis := range cat.Axes() {
		axes[axis] = true
	}
	sel := variant.Selection{}
	for axis, value := range selection {
		if value != "" && axes[axis] {
			sel[axis] = value
		}
	}

	avail := variant.Availability(combos, cat, sel)
	resp := &dto.AvailabilityResponse{
		ProductID: productID,
		Selection: sel,
		Axes:      make([]dto.AxisOptionsResponse, 0, len(cat.Axes())),
	}
	for _, axis := range cat.Axes() {
		axisResp := dto.AxisOptionsResponse{Axis: axis}
		for _, value := range cat.Values(axis) {
			axisResp.Values = append(axisResp.Values, dto.OptionResponse{
				Value:     value,
				Available: avail[axis][value],
			})
		}
		resp.Axes = append(resp.Axes, axisResp)
	}

	if sel.CompleteFor(cat) {
		resp.Complete = true
		resolved, err := variant.Resolve(combos, cat, sel)
		if err != nil {
			if errors.Is(err, domain.ErrCombinationMismatch) {
				// Catálogo y matriz desincronizados: se muestra "no disponible".
				return resp, nil
			}
			return nil, err
		}
		r := toCombinationResponse(*resolved)
		resp.Resolved = &r
	}
	return resp, nil
}
