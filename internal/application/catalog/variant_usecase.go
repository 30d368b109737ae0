package catalog

import (
	"github.com/google/uuid"

	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
)

// VariantUseCase administra el catálogo de variantes de un producto: las
// entradas (eje, valor) que alimentan al generador de combinaciones. Borrar
// una entrada no toca las combinaciones existentes; eso lo resuelve la
// reconciliación en la próxima regeneración.
type VariantUseCase struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewVariantUseCase construye el caso de uso.
func NewVariantUseCase(productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *VariantUseCase {
	return &VariantUseCase{productRepo: productRepo, variantRepo: variantRepo}
}

// Add agrega una entrada (eje, valor) al catálogo del producto. Rechaza eje o
// valor vacío tras recortar espacios y pares duplicados.
func (uc *VariantUseCase) Add(productID string, in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	v := entity.ProductVariant{
		ID:        uuid.New().String(),
		ProductID: productID,
		Axis:      in.Axis,
		Value:     in.Value,
	}
	v.Normalize()
	if !v.Valid() {
		return nil, domain.ErrInvalidAxisValue
	}

	existing, err := uc.variantRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.Axis == v.Axis && e.Value == v.Value {
			return nil, domain.ErrDuplicate
		}
	}

	if err := uc.variantRepo.Create(&v); err != nil {
		return nil, err
	}
	return toVariantResponse(v), nil
}

// List devuelve las entradas del catálogo de variantes del producto.
func (uc *VariantUseCase) List(productID string) ([]dto.VariantResponse, error) {
	list, err := uc.variantRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVariantResponse(v))
	}
	return out, nil
}

// Delete borra una entrada del catálogo por ID.
func (uc *VariantUseCase) Delete(id string) error {
	return uc.variantRepo.Delete(id)
}

func toVariantResponse(v entity.ProductVariant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Axis:      v.Axis,
		Value:     v.Value,
	}
}
