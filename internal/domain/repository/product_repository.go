package repository

import "github.com/muycriollo/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStocks escribe base_stock y total_stock juntos (solo el motor de
	// variantes deriva total_stock).
	UpdateStocks(productID string, baseStock, totalStock int) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
