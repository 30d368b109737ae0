package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo. No toca
// total_stock: ese campo lo deriva siempre MatrixUseCase.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Sin combinaciones, total_stock arranca igual al
// stock base.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.BaseStock < 0 {
		return nil, domain.ErrStockOutOfRange
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		IsOnSale:      in.IsOnSale,
		IsNew:         in.IsNew,
		Active:        true,
		Priority:      in.Priority,
		Category:      in.Category,
		Brand:         in.Brand,
		BaseStock:     in.BaseStock,
		TotalStock:    in.BaseStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables del producto. No permite modificar
// base_stock ni total_stock (se manejan vía el motor de variantes).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = in.OriginalPrice
	}
	if in.IsOnSale != nil {
		product.IsOnSale = *in.IsOnSale
		if !product.IsOnSale {
			product.OriginalPrice = nil
		}
	}
	if in.IsNew != nil {
		product.IsNew = *in.IsNew
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if in.Priority != nil {
		product.Priority = *in.Priority
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación. onlyActive filtra para la vitrina.
func (uc *ProductUseCase) List(onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		IsOnSale:      p.IsOnSale,
		IsNew:         p.IsNew,
		Active:        p.Active,
		Priority:      p.Priority,
		Category:      p.Category,
		Brand:         p.Brand,
		BaseStock:     p.BaseStock,
		TotalStock:    p.TotalStock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
