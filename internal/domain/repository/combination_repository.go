package repository

import "github.com/muycriollo/catalogo-api/internal/domain/entity"

// CombinationRepository define el puerto de persistencia para las
// combinaciones de la matriz de un producto.
type CombinationRepository interface {
	Create(c *entity.Combination) error
	GetByID(id string) (*entity.Combination, error)
	ListByProduct(productID string) ([]entity.Combination, error)
	// ListByProductForUpdate bloquea las filas del producto (SELECT FOR UPDATE)
	// para que el total se recalcule sobre una lectura autoritativa dentro de
	// la misma transacción.
	ListByProductForUpdate(productID string) ([]entity.Combination, error)
	UpdateStock(id string, stock int) error
	DeleteByIDs(ids []string) error
}
